package network

import (
	"context"
	"sync"

	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/queue"
)

// DefaultMaxBadWrites is the number of consecutive write failures a relay tolerates.
const DefaultMaxBadWrites = 10

// Relay shuttles messages between one connection and its game session.
// Messages read from the connection go to Inbound; messages from Outbound are
// written to the connection.
type Relay struct {
	conn         Conn
	inbound      queue.Queue
	outbound     <-chan *messages.Message
	maxBadWrites int

	closeConnOnce sync.Once
	closeInOnce   sync.Once
}

type NewRelayOptions struct {
	Conn     Conn
	Inbound  queue.Queue
	Outbound <-chan *messages.Message
	// MaxBadWrites defaults to DefaultMaxBadWrites.
	MaxBadWrites int
}

func NewRelay(opts NewRelayOptions) *Relay {
	maxBadWrites := opts.MaxBadWrites
	if maxBadWrites <= 0 {
		maxBadWrites = DefaultMaxBadWrites
	}
	return &Relay{
		conn:         opts.Conn,
		inbound:      opts.Inbound,
		outbound:     opts.Outbound,
		maxBadWrites: maxBadWrites,
	}
}

// Start runs the relay until both directions have stopped.
func (r *Relay) Start(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.readLoop()
	}()
	go func() {
		defer wg.Done()
		r.writeLoop(ctx)
	}()
	wg.Wait()
	log.Debug("Relay for %s stopped", r.conn.RemoteAddr())
}

func (r *Relay) readLoop() {
	for {
		msg, err := r.conn.ReadMessage()
		if IsMalformedMessage(err) {
			log.Warn("Dropping message from %s: %v", r.conn.RemoteAddr(), err)
			continue
		}
		if err != nil {
			if IsConnectionClosed(err) {
				log.Debug("Connection %s closed", r.conn.RemoteAddr())
			} else {
				log.Error("Failed to read message from %s: %v", r.conn.RemoteAddr(), err)
			}
			r.closeInbound()
			r.closeConn()
			return
		}

		if !messages.IsInboundType(msg.Type) {
			log.Warn("Dropping unexpected %s message from %s", msg.Type, r.conn.RemoteAddr())
			continue
		}
		if msg.Type == messages.MessageTypeClosed {
			r.closeInbound()
			r.closeConn()
			return
		}

		if err := r.inbound.Enqueue(msg); err != nil {
			if queue.IsQueueClosed(err) {
				// the session is gone
				r.closeConn()
				return
			}
			log.Error("Failed to enqueue message from %s: %v", r.conn.RemoteAddr(), err)
		}
	}
}

func (r *Relay) writeLoop(ctx context.Context) {
	// keep draining so the session never sees this participant as stalled
	defer func() {
		go func() {
			for range r.outbound {
			}
		}()
	}()

	badWrites := 0
	for {
		select {
		case <-ctx.Done():
			r.closeConn()
			return
		case msg, ok := <-r.outbound:
			if !ok {
				r.closeConn()
				return
			}
			if err := r.conn.WriteMessage(msg); err != nil {
				badWrites++
				log.Error("Failed to write message to %s (%d/%d): %v", r.conn.RemoteAddr(), badWrites, r.maxBadWrites, err)
				if badWrites >= r.maxBadWrites {
					log.Error("Too many write errors for %s, closing", r.conn.RemoteAddr())
					r.closeInbound()
					r.closeConn()
					return
				}
				continue
			}
			badWrites = 0
			if msg.Type == messages.MessageTypeClosed {
				r.closeConn()
				return
			}
		}
	}
}

// closeInbound tells the session this participant is gone, exactly once.
func (r *Relay) closeInbound() {
	r.closeInOnce.Do(func() {
		if err := r.inbound.Enqueue(&messages.Message{Type: messages.MessageTypeClosed}); err != nil && !queue.IsQueueClosed(err) {
			log.Error("Failed to enqueue closed message: %v", err)
		}
		r.inbound.Close()
	})
}

func (r *Relay) closeConn() {
	r.closeConnOnce.Do(func() {
		if err := r.conn.Close(); err != nil {
			log.Debug("Failed to close connection %s: %v", r.conn.RemoteAddr(), err)
		}
	})
}
