package engine

import (
	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/log"
)

// livePlayer returns the player with id when it exists and is alive.
func (e *Engine) livePlayer(id types.ID, command string) (*types.Player, bool) {
	p, ok := e.players[id]
	if !ok {
		log.Debug("Ignoring %s for unknown player %d", command, id)
		return nil, false
	}
	return p, p.IsAlive()
}

// SetPlayerSpeed sets the player's speed tier. Stopping is allowed in any life state.
func (e *Engine) SetPlayerSpeed(id types.ID, tier types.SpeedTier) {
	if int(tier) >= len(e.config.SpeedTiers) {
		log.Debug("Ignoring unknown speed tier %d", tier)
		return
	}
	p, alive := e.livePlayer(id, "set speed")
	if p == nil || (!alive && tier != types.SpeedStop) {
		return
	}
	p.SetSpeedTier(e.config.SpeedTiers[tier])
}

func (e *Engine) SetPlayerDirection(id types.ID, degrees float64) {
	if p, alive := e.livePlayer(id, "set direction"); alive {
		p.SetDirectionDegrees(degrees)
	}
}

// SetMissileRange sets the player's missile range tier. RangeNone is allowed in any life state.
func (e *Engine) SetMissileRange(id types.ID, tier types.RangeTier) {
	if int(tier) >= len(e.config.RangeTiers) {
		log.Debug("Ignoring unknown range tier %d", tier)
		return
	}
	p, alive := e.livePlayer(id, "set missile range")
	if p == nil || (!alive && tier != types.RangeNone) {
		return
	}
	p.SetMissileRangeTier(e.config.RangeTiers[tier])
}

func (e *Engine) SetMissileDirection(id types.ID, degrees float64) {
	if p, alive := e.livePlayer(id, "set missile direction"); alive {
		p.SetMissileDirectionDegrees(degrees)
	}
}

// SetMissilePower sets the player's missile power tier. PowerNone is allowed in any life state.
func (e *Engine) SetMissilePower(id types.ID, tier types.PowerTier) {
	if int(tier) >= len(e.config.PowerTiers) {
		log.Debug("Ignoring unknown power tier %d", tier)
		return
	}
	p, alive := e.livePlayer(id, "set missile power")
	if p == nil || (!alive && tier != types.PowerNone) {
		return
	}
	p.SetMissilePowerTier(e.config.PowerTiers[tier])
}

// FireMissile spawns a missile just outside the player along its aim when the
// player can pay for it. Otherwise a misfire event is queued.
func (e *Engine) FireMissile(id types.ID) {
	p, alive := e.livePlayer(id, "fire missile")
	if !alive {
		return
	}
	if p.MissileRange() < types.Epsilon || p.MissilePower() < types.Epsilon {
		e.addEvent(types.NewMisfireEvent(id))
		return
	}

	dx, dy := p.MissileDirection()
	x, y := p.EdgePoint(dx, dy, e.config.MissileWidth, e.config.MissileHeight)
	cost := types.MissileManaCost(e.config.MissileManaCostRate, p.MissileRange(), p.MissilePower())
	if !p.ConsumeMissileMana(cost) {
		e.addEvent(types.NewMisfireEvent(id))
		return
	}

	box := types.Box{X: x, Y: y, W: e.config.MissileWidth, H: e.config.MissileHeight}
	m := types.NewMissile(box, e.config.HealthMissile, p.MissileRange(), p.MissilePower(), id)
	m.SetDirection(dx, dy)
	m.SetSpeed(e.config.MissileSpeed)
	e.add(m)
	e.addEvent(types.NewFireEvent(m))
}

// SetPlayerDisconnected marks the player as quit. It is killed on the next tick.
func (e *Engine) SetPlayerDisconnected(id types.ID) {
	p, ok := e.players[id]
	if !ok {
		log.Debug("Ignoring disconnect for unknown player %d", id)
		return
	}
	p.SetQuit()
}
