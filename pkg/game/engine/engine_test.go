package engine

import (
	"math/rand"
	"testing"

	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, numNPCs int) *Engine {
	t.Helper()
	config := DefaultConfig()
	config.NumNPCs = numNPCs
	e, err := New(NewEngineOptions{
		Config: config,
		Rand:   rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return e
}

func eventKinds(events []types.Event) []types.EventKind {
	kinds := make([]types.EventKind, 0, len(events))
	for _, event := range events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func TestNew_invalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.DyingTime = 0
	_, err := New(NewEngineOptions{Config: config})
	assert.Error(t, err)
}

func TestEngine_NewGame(t *testing.T) {
	e := newTestEngine(t, DefaultConfig().NumNPCs)
	require.NoError(t, e.NewGame())

	config := e.Config()
	assert.Equal(t, 4+config.NumWalls, e.CountKind(types.KindWall))
	assert.Equal(t, 2, e.CountKind(types.KindPlayer))
	assert.Equal(t, config.NumNPCs, e.CountKind(types.KindNPC))
	assert.Equal(t, 0, e.CountKind(types.KindMissile))

	for _, id := range []types.ID{e.Player1ID(), e.Player2ID()} {
		p, ok := e.Player(id)
		require.True(t, ok)
		assert.Equal(t, config.RangeTiers[types.RangeShort].Value, p.MissileRange())
		assert.Equal(t, config.PowerTiers[types.PowerLow].Value, p.MissilePower())
	}
	assert.NotEqual(t, e.Player1ID(), e.Player2ID())

	// the four boundary walls come first and meet at the corners
	objects := e.Objects()
	for i := range objects {
		for j := i + 1; j < len(objects); j++ {
			if j < 4 {
				continue
			}
			assert.False(t, objects[i].Base().Box().Collides(objects[j].Base().Box()),
				"objects %d and %d overlap", objects[i].Base().ID(), objects[j].Base().ID())
		}
	}
}

func TestEngine_NewGame_placementFails(t *testing.T) {
	config := DefaultConfig()
	config.NumWalls = 10000
	config.MaxPlacementAttempts = 5
	e, err := New(NewEngineOptions{Config: config, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	err = e.NewGame()
	assert.True(t, IsPlacementFailed(err))
}

func TestEngine_FireMissile_hitsPlayer(t *testing.T) {
	e := newTestEngine(t, 0)
	a := e.AddPlayer(100, 100)
	b := e.AddPlayer(128, 100)
	a.SetMissileMana(20)
	e.SetMissileDirection(a.ID(), 0)

	e.FireMissile(a.ID())
	require.Equal(t, 1, e.CountKind(types.KindMissile))

	e.Evolve(0.1)

	events := e.DrainEvents()
	assert.Equal(t, []types.EventKind{types.EventFire, types.EventHit}, eventKinds(events))
	assert.Equal(t, a.ID(), events[1].Shooter)
	assert.Equal(t, b.ID(), events[1].Target)

	assert.InDelta(t, 95, b.Health(), types.Epsilon)
	assert.InDelta(t, 5, a.Experience(), types.Epsilon)

	missile, ok := e.Object(events[0].Missile)
	require.True(t, ok)
	assert.True(t, missile.Base().IsDying())
	assert.Less(t, missile.Base().Box().X+missile.Base().Box().W, b.Box().X)
}

func TestEngine_FireMissile_misfire(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine, p *types.Player)
	}{
		{
			name:  "no mana",
			setup: func(e *Engine, p *types.Player) {},
		},
		{
			name: "no range",
			setup: func(e *Engine, p *types.Player) {
				p.SetMissileMana(20)
				e.SetMissileRange(p.ID(), types.RangeNone)
			},
		},
		{
			name: "no power",
			setup: func(e *Engine, p *types.Player) {
				p.SetMissileMana(20)
				e.SetMissilePower(p.ID(), types.PowerNone)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 0)
			p := e.AddPlayer(100, 100)
			e.AddPlayer(500, 500)
			tt.setup(e, p)
			mana := p.MissileMana()

			e.FireMissile(p.ID())

			assert.Equal(t, 0, e.CountKind(types.KindMissile))
			events := e.DrainEvents()
			require.Len(t, events, 1)
			assert.Equal(t, types.EventMisfire, events[0].Kind)
			assert.Equal(t, p.ID(), events[0].Shooter)
			assert.Equal(t, mana, p.MissileMana())
		})
	}
}

func TestEngine_FireMissile_cost(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.AddPlayer(100, 100)
	p.SetMissileMana(20)

	e.FireMissile(p.ID())

	want := types.MissileManaCost(e.Config().MissileManaCostRate, p.MissileRange(), p.MissilePower())
	assert.InDelta(t, 20-want, p.MissileMana(), 1e-9)
}

func TestEngine_missileHitsWall(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.AddPlayer(100, 100)
	e.AddPlayer(500, 500)
	wall := e.AddWall(types.Box{X: 140, Y: 90, W: 16, H: 40})
	p.SetMissileMana(20)

	e.FireMissile(p.ID())
	e.Evolve(0.2)

	events := e.DrainEvents()
	require.Equal(t, []types.EventKind{types.EventFire, types.EventHit}, eventKinds(events))
	assert.Equal(t, wall.ID(), events[1].Target)
	assert.Equal(t, e.Config().HealthWall, wall.Health())
	assert.True(t, wall.IsAlive())
	assert.Zero(t, p.Experience())
}

func TestEngine_missileHitsMissile(t *testing.T) {
	e := newTestEngine(t, 0)
	a := e.AddPlayer(100, 100)
	b := e.AddPlayer(200, 100)
	a.SetMissileMana(20)
	b.SetMissileMana(20)
	e.SetMissileDirection(a.ID(), 0)
	e.SetMissileDirection(b.ID(), 180)

	e.FireMissile(a.ID())
	e.FireMissile(b.ID())
	require.Equal(t, 2, e.CountKind(types.KindMissile))
	e.DrainEvents()

	e.Evolve(0.1)
	assert.Empty(t, e.DrainEvents())

	e.Evolve(0.1)
	events := e.DrainEvents()
	assert.Equal(t, []types.EventKind{types.EventHit, types.EventHit}, eventKinds(events))
	assert.InDelta(t, 1, a.Experience(), types.Epsilon)
	assert.InDelta(t, 1, b.Experience(), types.Epsilon)
	assert.Equal(t, 100.0, a.Health())
	assert.Equal(t, 100.0, b.Health())
}

func TestEngine_missileExpiresAtRange(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.AddPlayer(100, 100)
	e.AddPlayer(100, 500)
	p.SetMissileMana(20)
	e.FireMissile(p.ID())
	events := e.DrainEvents()
	require.Len(t, events, 1)

	// short range is 100 and missiles fly at 200
	for i := 0; i < 6; i++ {
		e.Evolve(0.1)
	}

	obj, ok := e.Object(events[0].Missile)
	require.True(t, ok)
	m := obj.(*types.Missile)
	assert.True(t, m.HitMaxRange())
	assert.False(t, m.IsAlive())
	assert.Contains(t, eventKinds(e.DrainEvents()), types.EventDying)
}

func TestEngine_integrateStopsAtWall(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.AddPlayer(100, 100)
	e.AddPlayer(500, 500)
	wall := e.AddWall(types.Box{X: 150, Y: 90, W: 16, H: 40})
	p.SetMoveMana(10)
	e.SetPlayerDirection(p.ID(), 0)
	e.SetPlayerSpeed(p.ID(), types.SpeedSlow)

	for i := 0; i < 10; i++ {
		e.Evolve(0.5)
	}

	box := p.Box()
	assert.Greater(t, box.X, 133.0)
	assert.Less(t, box.X+box.W, wall.Box().X)
	assert.False(t, box.Collides(wall.Box()))
	assert.InDelta(t, box.X-100, p.Distance(), 1e-9)
}

func TestEngine_integrateDoesNotTunnel(t *testing.T) {
	e := newTestEngine(t, 0)
	e.AddPlayer(500, 500)
	e.AddPlayer(700, 500)
	wall := e.AddWall(types.Box{X: 150, Y: 90, W: 4, H: 40})
	n := e.AddNPC(100, 100)
	n.SetDirectionDegrees(0)
	n.SetSpeed(200)

	e.Evolve(1)

	assert.Less(t, n.Box().X+n.Box().W, wall.Box().X)
	assert.Equal(t, wall.ID(), n.HitID())
}

func TestEngine_playerStopsWithoutMoveMana(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.AddPlayer(100, 100)
	e.AddPlayer(500, 500)
	e.SetPlayerSpeed(p.ID(), types.SpeedSlow)
	require.Equal(t, 20.0, p.Speed())

	e.Evolve(0.1)

	assert.Zero(t, p.Speed())
	assert.Equal(t, 100.0, p.Box().X)
}

func TestEngine_commandsGating(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.AddPlayer(100, 100)
	e.AddPlayer(500, 500)

	e.SetPlayerSpeed(p.ID(), types.SpeedFast)
	assert.Zero(t, p.Speed(), "fast speed is locked without experience")

	e.SetPlayerSpeed(p.ID(), types.SpeedTier(9))
	assert.Zero(t, p.Speed())

	p.ApplyDamage(p.Health())
	require.True(t, p.IsDying())

	e.SetPlayerSpeed(p.ID(), types.SpeedSlow)
	assert.Zero(t, p.Speed(), "dead players cannot move")
	e.SetMissileRange(p.ID(), types.RangeNone)
	assert.Zero(t, p.MissileRange(), "range none applies in any life state")

	// unknown ids are ignored
	e.SetPlayerSpeed(999, types.SpeedSlow)
	e.FireMissile(999)
	e.SetPlayerDisconnected(999)
	assert.Empty(t, e.DrainEvents())
}

func TestEngine_quitPlayerLoses(t *testing.T) {
	e := newTestEngine(t, 0)
	p1 := e.AddPlayer(100, 100)
	p2 := e.AddPlayer(500, 500)

	e.SetPlayerDisconnected(p2.ID())
	e.Evolve(0.1)

	assert.True(t, p2.IsDying())
	assert.Zero(t, p2.MissilePower())
	assert.Zero(t, p2.MissileRange())
	assert.True(t, e.GameOverTriggered())
	assert.False(t, e.GameOver())
	assert.Equal(t, p1.ID(), e.WinnerID())

	last := e.GameOverFraction()
	for i := 0; i < 4; i++ {
		e.Evolve(1)
		assert.Greater(t, e.GameOverFraction(), last)
		last = e.GameOverFraction()
	}
	assert.True(t, e.GameOver())
	assert.True(t, p2.IsDead())
}

func TestEngine_gameOverOnTimeout(t *testing.T) {
	config := DefaultConfig()
	config.NumNPCs = 0
	config.MaxTotalTime = 1
	e, err := New(NewEngineOptions{Config: config, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	e.AddPlayer(100, 100)
	e.AddPlayer(500, 500)

	e.Evolve(0.6)
	assert.False(t, e.GameOverTriggered())
	e.Evolve(0.6)
	assert.True(t, e.GameOverTriggered())
	assert.Zero(t, e.WinnerID())
}

func TestEngine_reapDead(t *testing.T) {
	e := newTestEngine(t, 0)
	e.AddPlayer(100, 100)
	e.AddPlayer(500, 500)
	n := e.AddNPC(300, 300)
	e.DrainChanged()

	n.ApplyDamage(n.Health())
	e.Evolve(e.Config().DyingTime)

	obj, ok := e.Object(n.ID())
	require.True(t, ok, "dead entities survive the tick they died in")
	assert.True(t, obj.Base().IsDead())

	var sawDead bool
	for _, s := range e.DrainChanged() {
		if s.ID == n.ID() {
			sawDead = s.LifeState == types.LifeDead
		}
	}
	assert.True(t, sawDead)

	e.Evolve(0.1)
	_, ok = e.Object(n.ID())
	assert.False(t, ok)
	assert.False(t, e.IsChanged(n.ID()))
}

func TestEngine_topUpNPCs(t *testing.T) {
	e := newTestEngine(t, 2)
	require.NoError(t, e.NewGame())
	require.Equal(t, 2, e.CountKind(types.KindNPC))

	var victim types.ID
	for _, obj := range e.Objects() {
		if obj.Base().Kind() == types.KindNPC {
			victim = obj.Base().ID()
			obj.Base().ApplyDamage(obj.Base().Health())
			break
		}
	}

	e.Evolve(e.Config().DyingTime)
	e.Evolve(0.1)

	_, ok := e.Object(victim)
	assert.False(t, ok)
	assert.Equal(t, 2, e.CountKind(types.KindNPC))
}

func TestEngine_DrainChanged(t *testing.T) {
	e := newTestEngine(t, 0)
	p1 := e.AddPlayer(100, 100)
	p2 := e.AddPlayer(500, 500)

	changed := e.DrainChanged()
	require.Len(t, changed, 2)
	assert.Equal(t, p1.ID(), changed[0].ID)
	assert.Equal(t, p2.ID(), changed[1].ID)
	assert.NotNil(t, changed[0].Player)
	assert.Empty(t, e.DrainChanged())

	e.SetPlayerDirection(p2.ID(), 90)
	changed = e.DrainChanged()
	require.Len(t, changed, 1)
	assert.Equal(t, p2.ID(), changed[0].ID)
}
