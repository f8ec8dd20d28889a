package types

import "math"

// NPC wanders the arena on a random walk.
type NPC struct {
	Entity
	moveTime float64
}

func NewNPC(box Box, health float64) *NPC {
	return &NPC{
		Entity: NewEntity(KindNPC, box, health),
	}
}

// MoveTime is the time since the NPC last changed course.
func (n *NPC) MoveTime() float64 {
	return n.moveTime
}

func (n *NPC) AdvanceMoveTime(dt float64) {
	n.moveTime += dt
}

func (n *NPC) ResetMoveTime() {
	n.moveTime = 0
}

func (n *NPC) Snapshot() EntitySnapshot {
	return n.Entity.Snapshot()
}

// Wall never moves.
type Wall struct {
	Entity
}

func NewWall(box Box, health float64) *Wall {
	return &Wall{
		Entity: NewEntity(KindWall, box, health),
	}
}

func (w *Wall) Snapshot() EntitySnapshot {
	return w.Entity.Snapshot()
}

// Missile travels until it hits something or exceeds its range.
type Missile struct {
	Entity
	maxRange    float64
	power       float64
	owner       ID
	hitMaxRange bool
}

func NewMissile(box Box, health, maxRange, power float64, owner ID) *Missile {
	return &Missile{
		Entity:   NewEntity(KindMissile, box, health),
		maxRange: maxRange,
		power:    power,
		owner:    owner,
	}
}

func (m *Missile) Range() float64 {
	return m.maxRange
}

func (m *Missile) Power() float64 {
	return m.power
}

// Owner is the id of the player that fired the missile.
func (m *Missile) Owner() ID {
	return m.owner
}

func (m *Missile) HitMaxRange() bool {
	return m.hitMaxRange
}

// ExpireAtMaxRange starts the missile dying because it travelled past its range.
func (m *Missile) ExpireAtMaxRange() {
	m.hitMaxRange = true
	m.SetDying()
}

// MissileManaCost is the mana needed to fire a missile: rate * ln(range) * ln(10*power).
func MissileManaCost(rate, maxRange, power float64) float64 {
	return rate * math.Log(maxRange) * math.Log(10*power)
}

func (m *Missile) Snapshot() EntitySnapshot {
	s := m.Entity.Snapshot()
	s.Missile = &MissileSnapshot{
		Range:       m.maxRange,
		Power:       m.power,
		Owner:       m.owner,
		HitMaxRange: m.hitMaxRange,
	}
	return s
}
