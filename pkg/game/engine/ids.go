package engine

import "github.com/cbodonnell/arena/pkg/game/types"

// IDAllocator hands out entity ids. Ids must never repeat within a game.
type IDAllocator interface {
	Next() types.ID
}

// SequentialIDs allocates 1, 2, 3, ...
type SequentialIDs struct {
	last types.ID
}

func (s *SequentialIDs) Next() types.ID {
	s.last++
	return s.last
}
