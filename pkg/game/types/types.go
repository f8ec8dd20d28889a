package types

import "sort"

// Epsilon is the tolerance used for floating point comparisons in the simulation.
const Epsilon = 1e-6

// ID identifies an entity within a single game.
type ID uint32

// Kind is the closed set of simulated entity kinds.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindNPC
	KindWall
	KindMissile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindWall:
		return "wall"
	case KindMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// LifeState only ever advances ALIVE -> DYING -> DEAD.
type LifeState uint8

const (
	LifeAlive LifeState = iota
	LifeDying
	LifeDead
)

func (s LifeState) String() string {
	switch s {
	case LifeAlive:
		return "alive"
	case LifeDying:
		return "dying"
	case LifeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Box is an axis-aligned bounding box anchored at its top-left corner.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// At returns a copy of the box moved to (x, y).
func (b Box) At(x, y float64) Box {
	b.X = x
	b.Y = y
	return b
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

func (b Box) contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W &&
		y >= b.Y && y <= b.Y+b.H
}

// Collides reports whether any corner of either box lies inside the other.
// Edges are inclusive, so touching boxes collide.
func (b Box) Collides(other Box) bool {
	return b.contains(other.X, other.Y) ||
		b.contains(other.X, other.Y+other.H) ||
		b.contains(other.X+other.W, other.Y) ||
		b.contains(other.X+other.W, other.Y+other.H) ||
		other.contains(b.X, b.Y) ||
		other.contains(b.X, b.Y+b.H) ||
		other.contains(b.X+b.W, b.Y) ||
		other.contains(b.X+b.W, b.Y+b.H)
}

// DirtySet tracks the entities with observable changes that have not
// been snapshotted yet.
type DirtySet struct {
	ids map[ID]struct{}
}

func NewDirtySet() *DirtySet {
	return &DirtySet{
		ids: make(map[ID]struct{}),
	}
}

// Mark is safe to call on a nil set.
func (d *DirtySet) Mark(id ID) {
	if d == nil || id == 0 {
		return
	}
	d.ids[id] = struct{}{}
}

func (d *DirtySet) Has(id ID) bool {
	if d == nil {
		return false
	}
	_, ok := d.ids[id]
	return ok
}

func (d *DirtySet) Remove(id ID) {
	if d == nil {
		return
	}
	delete(d.ids, id)
}

func (d *DirtySet) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ids)
}

// Drain returns the marked ids in ascending order and clears the set.
func (d *DirtySet) Drain() []ID {
	if d == nil {
		return nil
	}
	ids := make([]ID, 0, len(d.ids))
	for id := range d.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	d.ids = make(map[ID]struct{})
	return ids
}

// Object is implemented by every entity kind.
type Object interface {
	Base() *Entity
	Snapshot() EntitySnapshot
}
