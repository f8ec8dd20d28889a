package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbodonnell/arena/pkg/game/types"
)

// ErrPlacementFailed is returned when no free spot is found within MaxPlacementAttempts.
var ErrPlacementFailed = errors.New("placement failed")

func IsPlacementFailed(err error) bool {
	return errors.Is(err, ErrPlacementFailed)
}

func (e *Engine) makeWalls() error {
	w, h, t := e.config.FieldWidth, e.config.FieldHeight, e.config.WallThick
	e.AddWall(types.Box{X: 0, Y: 0, W: w, H: t})
	e.AddWall(types.Box{X: 0, Y: h - t, W: w, H: t})
	e.AddWall(types.Box{X: 0, Y: 0, W: t, H: h})
	e.AddWall(types.Box{X: w - t, Y: 0, W: t, H: h})

	for i := 0; i < e.config.NumWalls; i++ {
		box, err := e.sample(func() types.Box {
			return types.Box{
				X: e.gridSample(t, w-t, t),
				Y: e.gridSample(t, h-t, t),
				W: t,
				H: t,
			}
		})
		if err != nil {
			return fmt.Errorf("failed to place wall %d: %w", i, err)
		}
		e.AddWall(box)
	}
	return nil
}

// placePlayers adds both players one at a time, so the second avoids the first.
func (e *Engine) placePlayers() error {
	pw, ph := e.config.PlayerWidth, e.config.PlayerHeight
	for i := 0; i < 2; i++ {
		box, err := e.sample(func() types.Box {
			return types.Box{
				X: e.gridSample(pw, e.config.FieldWidth-2*pw, 1),
				Y: e.gridSample(ph, e.config.FieldHeight-2*ph, 1),
				W: pw,
				H: ph,
			}
		})
		if err != nil {
			return fmt.Errorf("failed to place player %d: %w", i+1, err)
		}
		e.AddPlayer(box.X, box.Y)
	}
	return nil
}

func (e *Engine) makeNPCs() error {
	for i := 0; i < e.config.NumNPCs; i++ {
		n, err := e.placeNPC()
		if err != nil {
			return fmt.Errorf("failed to place npc %d: %w", i, err)
		}
		e.add(n)
	}
	return nil
}

// placeNPC returns an unbound NPC at a free spot on the NPC grid.
func (e *Engine) placeNPC() (*types.NPC, error) {
	nw, nh := e.config.NPCWidth, e.config.NPCHeight
	box, err := e.sample(func() types.Box {
		return types.Box{
			X: e.gridSample(nw, e.config.FieldWidth-nw, nw),
			Y: e.gridSample(nh, e.config.FieldHeight-nh, nh),
			W: nw,
			H: nh,
		}
	})
	if err != nil {
		return nil, err
	}
	return e.newNPC(box.X, box.Y), nil
}

// sample draws candidates until one collides with nothing.
func (e *Engine) sample(candidate func() types.Box) (types.Box, error) {
	for attempt := 0; attempt < e.config.MaxPlacementAttempts; attempt++ {
		box := candidate()
		if !e.collidesAny(box) {
			return box, nil
		}
	}
	return types.Box{}, fmt.Errorf("%w after %d attempts", ErrPlacementFailed, e.config.MaxPlacementAttempts)
}

// gridSample picks lo + k*step for a random k with the result below hi.
func (e *Engine) gridSample(lo, hi, step float64) float64 {
	n := int(math.Ceil((hi - lo) / step))
	if n <= 0 {
		return lo
	}
	return lo + step*float64(e.rand.Intn(n))
}
