package engine

import (
	"math"

	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/log"
)

func (e *Engine) evolveObject(obj types.Object, dt float64) {
	switch o := obj.(type) {
	case *types.Player:
		e.evolvePlayer(o, dt)
	case *types.NPC:
		e.evolveNPC(o, dt)
	case *types.Missile:
		e.evolveMissile(o, dt)
	case *types.Wall:
		// walls never move
		e.progressDying(o.Base(), dt)
	default:
		log.Error("Unhandled object type: %T", obj)
	}
}

// evolvePlayer pays the move mana for the current speed, moves, then recharges.
func (e *Engine) evolvePlayer(p *types.Player, dt float64) {
	stop := e.config.SpeedTiers[types.SpeedStop]
	if p.IsAlive() && p.Speed() >= 1 {
		cost := math.Max(e.config.MoveManaCostRate*dt*math.Log(p.Speed()/10), 0)
		if !p.ConsumeMoveMana(cost) {
			p.SetSpeedTier(stop)
		}
	} else {
		p.SetSpeedTier(stop)
	}

	e.integrate(p.Base(), dt)
	e.progressDying(p.Base(), dt)

	if p.IsAlive() {
		p.RechargeMissileMana(p.MissileManaRechargeRate() * dt)
		p.RechargeMoveMana(p.MoveManaRechargeRate() * dt)
	}
}

// evolveNPC occasionally picks a new random heading once it has walked long enough.
func (e *Engine) evolveNPC(n *types.NPC, dt float64) {
	if n.IsAlive() {
		n.AdvanceMoveTime(dt)
		if n.MoveTime() >= e.config.NPCMinMoveTime && e.rand.Float64() < e.config.NPCMoveChance {
			n.SetDirectionDegrees(e.rand.Float64() * 360)
			n.SetSpeed(e.config.NPCSpeed)
			n.ResetMoveTime()
		}
	}

	e.integrate(n.Base(), dt)
	e.progressDying(n.Base(), dt)
}

// evolveMissile moves the missile and expires it once it has flown past its range.
func (e *Engine) evolveMissile(m *types.Missile, dt float64) {
	e.integrate(m.Base(), dt)
	e.progressDying(m.Base(), dt)

	if m.IsAlive() && m.Distance() > m.Range() {
		m.ExpireAtMaxRange()
		e.addEvent(types.NewDyingEvent(m))
	}
}
