package types

import "math"

// Entity holds the state shared by every simulated object.
// Observable mutations mark the entity in its DirtySet.
type Entity struct {
	id            ID
	kind          Kind
	box           Box
	dx            float64
	dy            float64
	speed         float64
	health        float64
	maxHealth     float64
	life          LifeState
	dyingFraction float64
	distance      float64
	hitID         ID
	dirty         *DirtySet
}

func NewEntity(kind Kind, box Box, health float64) Entity {
	return Entity{
		kind:      kind,
		box:       box,
		health:    health,
		maxHealth: health,
		life:      LifeAlive,
	}
}

// Bind assigns the entity its id and the dirty set it reports to.
// A newly bound entity is always marked so its first state is observed.
func (e *Entity) Bind(id ID, dirty *DirtySet) {
	e.id = id
	e.dirty = dirty
	e.touch()
}

func (e *Entity) touch() {
	e.dirty.Mark(e.id)
}

func (e *Entity) Base() *Entity {
	return e
}

func (e *Entity) ID() ID {
	return e.id
}

func (e *Entity) Kind() Kind {
	return e.kind
}

func (e *Entity) Box() Box {
	return e.box
}

func (e *Entity) SetPosition(x, y float64) {
	if math.Abs(x-e.box.X) > Epsilon || math.Abs(y-e.box.Y) > Epsilon {
		e.touch()
	}
	e.box.X = x
	e.box.Y = y
}

func (e *Entity) Center() (float64, float64) {
	return e.box.Center()
}

// EdgePoint returns where an object of size w x h should be placed so that it
// sits just outside this entity's box along the direction (dx, dy) from its center.
func (e *Entity) EdgePoint(dx, dy, w, h float64) (float64, float64) {
	xc, yc := e.Center()
	var x, y float64
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			x = e.box.X + e.box.W + w
		} else {
			x = e.box.X - 2*w
		}
		t := (x - xc) / dx
		y = yc + dy*t
	} else {
		if dy > 0 {
			y = e.box.Y + e.box.H + h
		} else {
			y = e.box.Y - 2*h
		}
		t := (y - yc) / dy
		x = xc + dx*t
	}
	return x - w/2, y - h/2
}

func (e *Entity) Direction() (float64, float64) {
	return e.dx, e.dy
}

func (e *Entity) SetDirection(dx, dy float64) {
	if math.Abs(dx-e.dx) > 0.001 || math.Abs(dy-e.dy) > 0.001 {
		e.touch()
	}
	e.dx = dx
	e.dy = dy
}

func (e *Entity) SetDirectionDegrees(degrees float64) {
	r := degrees * math.Pi / 180
	e.SetDirection(math.Cos(r), math.Sin(r))
}

func (e *Entity) Speed() float64 {
	return e.speed
}

func (e *Entity) SetSpeed(speed float64) {
	if math.Abs(speed-e.speed) > Epsilon {
		e.touch()
	}
	e.speed = speed
}

// IsMoving reports whether the entity would move if integrated.
func (e *Entity) IsMoving() bool {
	return math.Abs(e.speed) > Epsilon && (e.dx != 0 || e.dy != 0) && e.life == LifeAlive
}

func (e *Entity) Health() float64 {
	return e.health
}

func (e *Entity) MaxHealth() float64 {
	return e.maxHealth
}

// ApplyDamage removes up to damage health and returns the amount actually removed.
// An entity whose health drops to zero starts dying.
func (e *Entity) ApplyDamage(damage float64) float64 {
	if damage <= 0 || e.health < Epsilon {
		return 0
	}
	dealt := damage
	if e.health >= damage+Epsilon {
		e.health -= damage
	} else {
		dealt = e.health
		e.health = 0
	}
	e.touch()
	if e.health < Epsilon {
		e.health = 0
		e.SetDying()
	}
	return dealt
}

func (e *Entity) LifeState() LifeState {
	return e.life
}

func (e *Entity) IsAlive() bool {
	return e.life == LifeAlive
}

func (e *Entity) IsDying() bool {
	return e.life == LifeDying
}

func (e *Entity) IsDead() bool {
	return e.life == LifeDead
}

// SetDying moves an alive entity into the dying phase. It has no effect otherwise.
func (e *Entity) SetDying() {
	if e.life != LifeAlive {
		return
	}
	e.life = LifeDying
	e.dyingFraction = 0
	e.touch()
}

func (e *Entity) DyingFraction() float64 {
	return e.dyingFraction
}

// AddDyingFraction advances a dying entity by dt out of dyingTime seconds.
// It returns true when the entity became DEAD on this call.
func (e *Entity) AddDyingFraction(dt, dyingTime float64) bool {
	if e.life != LifeDying {
		return false
	}
	e.dyingFraction += dt / dyingTime
	e.touch()
	if e.dyingFraction >= 1 {
		e.dyingFraction = 1
		e.life = LifeDead
		return true
	}
	return false
}

func (e *Entity) Distance() float64 {
	return e.distance
}

func (e *Entity) AddDistance(distance float64) {
	if distance <= Epsilon {
		return
	}
	e.distance += distance
	e.touch()
}

// HitID is the entity that halted this entity's motion during the last integration, or 0.
func (e *Entity) HitID() ID {
	return e.hitID
}

func (e *Entity) SetHitID(id ID) {
	e.hitID = id
}

// Snapshot returns the observable state common to all kinds.
func (e *Entity) Snapshot() EntitySnapshot {
	return EntitySnapshot{
		ID:            e.id,
		Kind:          e.kind,
		Box:           e.box,
		DX:            e.dx,
		DY:            e.dy,
		Speed:         e.speed,
		Health:        e.health,
		MaxHealth:     e.maxHealth,
		LifeState:     e.life,
		DyingFraction: e.dyingFraction,
		Distance:      e.distance,
	}
}

// EntitySnapshot is a copy of an entity's observable state.
type EntitySnapshot struct {
	ID            ID
	Kind          Kind
	Box           Box
	DX            float64
	DY            float64
	Speed         float64
	Health        float64
	MaxHealth     float64
	LifeState     LifeState
	DyingFraction float64
	Distance      float64

	Player  *PlayerSnapshot
	Missile *MissileSnapshot
}

type PlayerSnapshot struct {
	MissileDX               float64
	MissileDY               float64
	MissileRange            float64
	MissilePower            float64
	MissileMana             float64
	MissileManaMax          float64
	MissileManaRechargeRate float64
	MoveMana                float64
	MoveManaMax             float64
	MoveManaRechargeRate    float64
	Experience              float64
}

type MissileSnapshot struct {
	Range       float64
	Power       float64
	Owner       ID
	HitMaxRange bool
}
