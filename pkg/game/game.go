package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/arena/pkg/game/constants"
	"github.com/cbodonnell/arena/pkg/game/engine"
	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/queue"
	"github.com/cbodonnell/arena/pkg/workers"
)

// GameManager runs one game session: it applies participant commands to the
// engine, advances it at a fixed tick rate and sends every participant the result.
type GameManager struct {
	id           string
	engine       *engine.Engine
	seats        []*seat
	tickInterval time.Duration
	resultsChan  chan<- workers.GameResult
	rand         *rand.Rand

	tick         uint64
	gameOverSent bool
	done         bool
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// ID identifies the session in logs and results.
	ID string
	// Engine must already hold a new game.
	Engine *engine.Engine
	// Participants are the two combatants, in player order, optionally followed by a spectator.
	Participants []*Participant
	// TickInterval defaults to constants.TickInterval.
	TickInterval time.Duration
	// ResultsChan receives the outcome of the game once. It may be nil.
	ResultsChan chan<- workers.GameResult
	Rand        *rand.Rand
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	combatants := 0
	for _, p := range opts.Participants {
		if !p.Spectator {
			combatants++
		}
	}
	if combatants != 2 {
		return nil, fmt.Errorf("expected 2 combatants, got %d", combatants)
	}

	gm := &GameManager{
		id:           opts.ID,
		engine:       opts.Engine,
		tickInterval: opts.TickInterval,
		resultsChan:  opts.ResultsChan,
		rand:         opts.Rand,
	}
	if gm.tickInterval <= 0 {
		gm.tickInterval = constants.TickInterval
	}
	if gm.rand == nil {
		gm.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	players := []types.ID{opts.Engine.Player1ID(), opts.Engine.Player2ID()}
	next := 0
	for i, p := range opts.Participants {
		s := &seat{index: i, p: p, connected: true}
		if p.Spectator {
			// spectators observe from player 1's point of view
			s.playerID = players[0]
		} else {
			s.playerID = players[next]
			next++
		}
		gm.seats = append(gm.seats, s)
	}
	return gm, nil
}

func (gm *GameManager) ID() string {
	return gm.id
}

// Start runs the game loop until the game is over, every combatant has left, or ctx is cancelled.
// All participant outbound channels are closed when it returns.
func (gm *GameManager) Start(ctx context.Context) error {
	log.Info("Session %s started", gm.id)
	defer gm.shutdown()

	last := time.Now()
	for !gm.done {
		gm.processParticipantMessages()

		if remaining := gm.tickInterval - time.Since(last); remaining > 0 {
			select {
			case <-ctx.Done():
				log.Info("Session %s cancelled", gm.id)
				return nil
			case <-time.After(remaining):
			}
		} else if ctx.Err() != nil {
			log.Info("Session %s cancelled", gm.id)
			return nil
		}

		now := time.Now()
		gm.evolve(now.Sub(last).Seconds())
		last = now

		gm.broadcast(gm.composeMessages(ctx))
	}

	log.Info("Session %s finished after %.2fs", gm.id, gm.engine.TotalTime())
	return nil
}

func (gm *GameManager) evolve(dt float64) {
	gm.tick++
	gm.engine.Evolve(dt)
	if gm.engine.GameOver() || !gm.anyCombatantConnected() {
		gm.done = true
	}
}

func (gm *GameManager) anyCombatantConnected() bool {
	for _, s := range gm.seats {
		if s.connected && s.combatant() {
			return true
		}
	}
	return false
}

// processParticipantMessages drains every participant's inbound queue in random order.
func (gm *GameManager) processParticipantMessages() {
	for _, i := range gm.rand.Perm(len(gm.seats)) {
		s := gm.seats[i]
		if !s.connected {
			continue
		}
		pending, err := s.p.Inbound.ReadAllMessages()
		for _, item := range pending {
			if !s.connected {
				break
			}
			message, ok := item.(*messages.Message)
			if !ok {
				log.Error("Failed to cast message to messages.Message")
				continue
			}
			gm.handleMessage(s, message)
		}
		if err != nil {
			if !queue.IsQueueClosed(err) {
				log.Error("Failed to read messages from participant %s: %v", s.p.ID, err)
			}
			gm.disconnect(s)
		}
	}
}

func (gm *GameManager) handleMessage(s *seat, message *messages.Message) {
	switch message.Type {
	case messages.MessageTypeClosed:
		log.Debug("Participant %s closed", s.p.ID)
		gm.disconnect(s)
	case messages.MessageTypeEcho:
		if !s.combatant() {
			return
		}
		echo := &messages.Echo{}
		if err := message.Decode(echo); err != nil {
			log.Error("Failed to decode echo: %v", err)
			return
		}
		gm.send(s, serverMessage(messages.MessageTypeEcho, echo))
	case messages.MessageTypeBroadcast:
		if !s.combatant() {
			return
		}
		broadcast := &messages.Broadcast{}
		if err := message.Decode(broadcast); err != nil {
			log.Error("Failed to decode broadcast: %v", err)
			return
		}
		broadcast.From = s.p.Name
		gm.broadcast([]*messages.Message{serverMessage(messages.MessageTypeBroadcast, broadcast)})
	case messages.MessageTypePlayerID:
		gm.send(s, serverMessage(messages.MessageTypePlayerID, &messages.PlayerID{ID: uint32(s.playerID)}))
	default:
		if !s.combatant() {
			log.Debug("Ignoring %s from spectator %s", message.Type, s.p.ID)
			return
		}
		if err := gm.applyCommand(s.playerID, message); err != nil {
			log.Error("Failed to apply %s from participant %s: %v", message.Type, s.p.ID, err)
		}
	}
}

// applyCommand forwards a player command to the engine.
func (gm *GameManager) applyCommand(id types.ID, message *messages.Message) error {
	switch message.Type {
	case messages.MessageTypeSetSpeed:
		payload := &messages.ClientSetSpeed{}
		if err := message.Decode(payload); err != nil {
			return err
		}
		gm.engine.SetPlayerSpeed(id, types.SpeedTier(payload.Speed))
	case messages.MessageTypeSetDirection:
		payload := &messages.ClientSetDirection{}
		if err := message.Decode(payload); err != nil {
			return err
		}
		gm.engine.SetPlayerDirection(id, payload.Degrees)
	case messages.MessageTypeSetMissileRange:
		payload := &messages.ClientSetMissileRange{}
		if err := message.Decode(payload); err != nil {
			return err
		}
		gm.engine.SetMissileRange(id, types.RangeTier(payload.Range))
	case messages.MessageTypeSetMissileDirection:
		payload := &messages.ClientSetMissileDirection{}
		if err := message.Decode(payload); err != nil {
			return err
		}
		gm.engine.SetMissileDirection(id, payload.Degrees)
	case messages.MessageTypeSetMissilePower:
		payload := &messages.ClientSetMissilePower{}
		if err := message.Decode(payload); err != nil {
			return err
		}
		gm.engine.SetMissilePower(id, types.PowerTier(payload.Power))
	case messages.MessageTypeFireMissile:
		gm.engine.FireMissile(id)
	default:
		return fmt.Errorf("unhandled message type: %s", message.Type)
	}
	return nil
}

// composeMessages builds the messages every participant receives this tick.
func (gm *GameManager) composeMessages(ctx context.Context) []*messages.Message {
	update := ServerGameUpdateFromTick(gm.tick, gm.engine.DrainChanged(), gm.engine.DrainEvents())
	msgs := []*messages.Message{serverMessage(messages.MessageTypeServerGameUpdate, update)}

	if !gm.gameOverSent && gm.engine.GameOverFraction() > types.Epsilon {
		winner := gm.winnerName()
		log.Info("Session %s winner is %q", gm.id, winner)
		msgs = append(msgs, serverMessage(messages.MessageTypeServerGameOver, &messages.ServerGameOver{Winner: winner}))
		gm.reportResult(ctx, winner)
	}

	if gm.done {
		if !gm.gameOverSent {
			// every combatant left before the game could finish
			gm.reportResult(ctx, "")
		}
		msgs = append(msgs, &messages.Message{Type: messages.MessageTypeClosed})
	}
	return msgs
}

func (gm *GameManager) winnerName() string {
	winner := gm.engine.WinnerID()
	if winner == 0 {
		return ""
	}
	for _, s := range gm.seats {
		if s.combatant() && s.playerID == winner {
			return s.p.Name
		}
	}
	return ""
}

func (gm *GameManager) reportResult(ctx context.Context, winner string) {
	gm.gameOverSent = true
	if gm.resultsChan == nil {
		return
	}
	result := workers.GameResult{
		SessionID: gm.id,
		Winner:    winner,
	}
	for _, s := range gm.seats {
		if !s.combatant() {
			continue
		}
		if result.Player1 == "" {
			result.Player1 = s.p.Name
		} else {
			result.Player2 = s.p.Name
		}
	}
	select {
	case gm.resultsChan <- result:
	case <-ctx.Done():
		log.Warn("Session %s result for %s vs %s dropped on shutdown", gm.id, result.Player1, result.Player2)
	}
}

// broadcast sends msgs to every connected participant in random order.
func (gm *GameManager) broadcast(msgs []*messages.Message) {
	for _, i := range gm.rand.Perm(len(gm.seats)) {
		s := gm.seats[i]
		for _, m := range msgs {
			if !gm.send(s, m) {
				break
			}
		}
	}
}

// send queues m for s without blocking. A participant that cannot keep up is disconnected.
func (gm *GameManager) send(s *seat, m *messages.Message) bool {
	if !s.connected {
		return false
	}
	select {
	case s.p.Outbound <- m:
		return true
	default:
		log.Warn("Outbound buffer full for participant %s, disconnecting", s.p.ID)
		gm.disconnect(s)
		return false
	}
}

// disconnect detaches s from the session. A combatant's player quits the game.
func (gm *GameManager) disconnect(s *seat) {
	if !s.connected {
		return
	}
	s.connected = false
	if s.combatant() {
		gm.engine.SetPlayerDisconnected(s.playerID)
	}
	s.p.Inbound.Close()
	close(s.p.Outbound)
	log.Info("Participant %s (%s) left session %s", s.p.ID, s.p.Name, gm.id)
}

func (gm *GameManager) shutdown() {
	for _, s := range gm.seats {
		if !s.connected {
			continue
		}
		s.connected = false
		s.p.Inbound.Close()
		close(s.p.Outbound)
	}
}
