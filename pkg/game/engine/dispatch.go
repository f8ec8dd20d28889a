package engine

import (
	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/log"
)

type kindPair struct {
	a types.Kind
	b types.Kind
}

// collisionHandler resolves a collision between a and b, whose kinds match the table key in order.
type collisionHandler func(e *Engine, a, b types.Object)

// collisionHandlers is looked up in both orders, so each unordered pair appears once.
// Pairs without an entry have no effect.
var collisionHandlers = map[kindPair]collisionHandler{
	{types.KindMissile, types.KindWall}:    missileOnWall,
	{types.KindMissile, types.KindPlayer}:  missileOnCombatant,
	{types.KindMissile, types.KindNPC}:     missileOnCombatant,
	{types.KindMissile, types.KindMissile}: missileOnMissile,
}

func (e *Engine) handleCollision(id, hitID types.ID) {
	a, ok := e.objects[id]
	if !ok {
		log.Warn("Collision from unknown object %d", id)
		return
	}
	b, ok := e.objects[hitID]
	if !ok {
		log.Warn("Collision with unknown object %d", hitID)
		return
	}
	if !a.Base().IsAlive() || !b.Base().IsAlive() {
		return
	}

	ka, kb := a.Base().Kind(), b.Base().Kind()
	if handler, ok := collisionHandlers[kindPair{ka, kb}]; ok {
		handler(e, a, b)
		return
	}
	if handler, ok := collisionHandlers[kindPair{kb, ka}]; ok {
		handler(e, b, a)
	}
}

// missileOnWall destroys the missile and leaves the wall untouched.
func missileOnWall(e *Engine, a, b types.Object) {
	m := a.(*types.Missile)
	m.ApplyDamage(e.config.InfiniteHealth)
	e.addEvent(types.NewHitEvent(m, b.Base().ID()))
}

// missileOnCombatant damages both sides by the missile's power and credits the
// shooter with the damage the target actually took.
func missileOnCombatant(e *Engine, a, b types.Object) {
	m := a.(*types.Missile)
	target := b.Base()

	m.ApplyDamage(m.Power())
	dealt := target.ApplyDamage(m.Power())
	e.addEvent(types.NewHitEvent(m, target.ID()))

	if p, ok := b.(*types.Player); ok && p.Health() < types.Epsilon {
		e.disarm(p)
	}
	e.creditShooter(m.Owner(), dealt)
}

// missileOnMissile damages both missiles by the other's power.
func missileOnMissile(e *Engine, a, b types.Object) {
	m1 := a.(*types.Missile)
	m2 := b.(*types.Missile)

	dealtTo1 := m1.ApplyDamage(m2.Power())
	dealtTo2 := m2.ApplyDamage(m1.Power())
	e.addEvent(types.NewHitEvent(m1, m2.ID()))
	e.addEvent(types.NewHitEvent(m2, m1.ID()))

	e.creditShooter(m1.Owner(), dealtTo2)
	e.creditShooter(m2.Owner(), dealtTo1)
}

func (e *Engine) creditShooter(id types.ID, damage float64) {
	p, ok := e.players[id]
	if !ok {
		log.Debug("Shooter %d no longer exists, experience not credited", id)
		return
	}
	p.AddExperience(damage)
}
