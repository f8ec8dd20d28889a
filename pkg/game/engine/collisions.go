package engine

import (
	"math"

	"github.com/cbodonnell/arena/pkg/game/types"
)

// integrate moves ent as far along its heading as dt allows without overlapping
// another live entity. It steps in increments no larger than the smallest object
// dimension, then bisects the remaining time around the first contact until the
// step falls below the minimum resolution. The blocking entity is recorded as
// the entity's HitID.
func (e *Engine) integrate(ent *types.Entity, dt float64) {
	ent.SetHitID(0)
	if !ent.IsMoving() {
		return
	}

	start := ent.Box()
	dx, dy := ent.Direction()
	speed := ent.Speed()
	stepSize := e.minSize
	for stepSize >= e.config.MinResolution && dt > types.Epsilon {
		largest := math.Max(math.Abs(dx*speed*dt), math.Abs(dy*speed*dt))
		tstep := dt
		if largest > stepSize {
			tstep = stepSize * dt / largest
		}
		x, y, t := e.advanceUntilHit(ent, tstep, dt)
		ent.SetPosition(x, y)
		dt -= t
		stepSize /= 2
	}

	end := ent.Box()
	ent.AddDistance(math.Abs(end.X-start.X) + math.Abs(end.Y-start.Y))
}

// advanceUntilHit walks forward in tstep increments up to dt and returns the
// last collision-free position and the time it took to get there.
func (e *Engine) advanceUntilHit(ent *types.Entity, tstep, dt float64) (float64, float64, float64) {
	box := ent.Box()
	dx, dy := ent.Direction()
	speed := ent.Speed()

	keepX, keepY, keepT := box.X, box.Y, 0.0
	for t := tstep; t < dt+types.Epsilon; t += tstep {
		if t > dt {
			t = dt
		}
		candidate := box.At(box.X+dx*speed*t, box.Y+dy*speed*t)
		hitID := e.firstCollision(ent.ID(), candidate)
		ent.SetHitID(hitID)
		if hitID != 0 {
			break
		}
		keepX, keepY, keepT = candidate.X, candidate.Y, t
	}
	return keepX, keepY, keepT
}

// firstCollision returns the lowest id of a live entity other than self that box collides with.
func (e *Engine) firstCollision(self types.ID, box types.Box) types.ID {
	for _, id := range e.order {
		if id == self {
			continue
		}
		other := e.objects[id].Base()
		if !other.IsAlive() {
			continue
		}
		if box.Collides(other.Box()) {
			return id
		}
	}
	return 0
}

// collidesAny reports whether box collides with any entity, regardless of life state.
func (e *Engine) collidesAny(box types.Box) bool {
	for _, id := range e.order {
		if box.Collides(e.objects[id].Base().Box()) {
			return true
		}
	}
	return false
}
