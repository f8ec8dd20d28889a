package game

import (
	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/queue"
)

// OutboundBufferSize is the number of messages a participant may fall behind before it is dropped.
const OutboundBufferSize = 256

// Participant is one connection attached to a game session.
// Inbound carries *messages.Message values from the connection; the session
// closes Outbound when it is done with the participant.
type Participant struct {
	ID        string
	Name      string
	Spectator bool
	Inbound   queue.Queue
	Outbound  chan *messages.Message
}

// NewParticipant creates a participant with a fresh inbound queue and outbound channel.
func NewParticipant(id, name string, spectator bool) *Participant {
	return &Participant{
		ID:        id,
		Name:      name,
		Spectator: spectator,
		Inbound:   queue.NewInMemoryQueue(0),
		Outbound:  make(chan *messages.Message, OutboundBufferSize),
	}
}

// seat tracks a participant's connection and the player it controls or observes.
type seat struct {
	index     int
	p         *Participant
	playerID  types.ID
	connected bool
}

func (s *seat) combatant() bool {
	return !s.p.Spectator
}
