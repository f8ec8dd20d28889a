package game

import (
	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/messages"
)

func EntityUpdateFromSnapshot(s types.EntitySnapshot) messages.EntityUpdate {
	update := messages.EntityUpdate{
		ID:            uint32(s.ID),
		Kind:          s.Kind.String(),
		X:             s.Box.X,
		Y:             s.Box.Y,
		W:             s.Box.W,
		H:             s.Box.H,
		DX:            s.DX,
		DY:            s.DY,
		Speed:         s.Speed,
		Health:        s.Health,
		MaxHealth:     s.MaxHealth,
		LifeState:     s.LifeState.String(),
		DyingFraction: s.DyingFraction,
		Distance:      s.Distance,
	}
	if p := s.Player; p != nil {
		update.Player = &messages.PlayerUpdate{
			MissileDX:               p.MissileDX,
			MissileDY:               p.MissileDY,
			MissileRange:            p.MissileRange,
			MissilePower:            p.MissilePower,
			MissileMana:             p.MissileMana,
			MissileManaMax:          p.MissileManaMax,
			MissileManaRechargeRate: p.MissileManaRechargeRate,
			MoveMana:                p.MoveMana,
			MoveManaMax:             p.MoveManaMax,
			MoveManaRechargeRate:    p.MoveManaRechargeRate,
			Experience:              p.Experience,
		}
	}
	if m := s.Missile; m != nil {
		update.Missile = &messages.MissileUpdate{
			Range:       m.Range,
			Power:       m.Power,
			Owner:       uint32(m.Owner),
			HitMaxRange: m.HitMaxRange,
		}
	}
	return update
}

func EventUpdateFromEvent(e types.Event) messages.EventUpdate {
	return messages.EventUpdate{
		Kind:    e.Kind.String(),
		Shooter: uint32(e.Shooter),
		Missile: uint32(e.Missile),
		Target:  uint32(e.Target),
		Range:   e.Range,
		Power:   e.Power,
	}
}

// ServerGameUpdateFromTick builds the per-tick update from the drained snapshots and events.
func ServerGameUpdateFromTick(tick uint64, snapshots []types.EntitySnapshot, events []types.Event) *messages.ServerGameUpdate {
	update := &messages.ServerGameUpdate{
		Tick:     tick,
		Entities: make([]messages.EntityUpdate, 0, len(snapshots)),
		Events:   make([]messages.EventUpdate, 0, len(events)),
	}
	for _, s := range snapshots {
		update.Entities = append(update.Entities, EntityUpdateFromSnapshot(s))
	}
	for _, e := range events {
		update.Events = append(update.Events, EventUpdateFromEvent(e))
	}
	return update
}

// serverMessage builds a message from the server, logging encode failures.
func serverMessage(t string, payload interface{}) *messages.Message {
	m, err := messages.NewMessage(t, payload)
	if err != nil {
		log.Error("Failed to build %s message: %v", t, err)
		return &messages.Message{Type: t}
	}
	return m
}
