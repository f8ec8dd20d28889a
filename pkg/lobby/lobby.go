package lobby

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cbodonnell/arena/pkg/game"
	"github.com/cbodonnell/arena/pkg/game/engine"
	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/network"
	"github.com/cbodonnell/arena/pkg/repositories"
	"github.com/cbodonnell/arena/pkg/workers"
	"github.com/google/uuid"
)

// DefaultLoginTimeout is how long a new connection has to send its login.
const DefaultLoginTimeout = 10 * time.Second

// Session describes a running game session.
type Session struct {
	ID        string    `json:"id"`
	Player1   string    `json:"player1"`
	Player2   string    `json:"player2"`
	Viewer    string    `json:"viewer,omitempty"`
	StartedAt time.Time `json:"startedAt"`
}

type waiting struct {
	conn *watchedConn
	name string
	// paired is guarded by the lobby lock. claimed is closed once it is set.
	paired  bool
	claimed chan struct{}
}

// Lobby logs connections in and pairs waiting players into game sessions,
// first come first served. A waiting viewer joins the next session that starts.
type Lobby struct {
	repository   repositories.Repository
	resultsChan  chan<- workers.GameResult
	engineConfig engine.Config
	tickInterval time.Duration
	loginTimeout time.Duration

	lock     sync.Mutex
	players  []*waiting
	viewers  []*waiting
	sessions map[string]*Session
}

type NewLobbyOptions struct {
	// Repository is optional. When set, sessions between players with a
	// registered tournament game mark that game started.
	Repository   repositories.Repository
	ResultsChan  chan<- workers.GameResult
	EngineConfig engine.Config
	TickInterval time.Duration
	// LoginTimeout defaults to DefaultLoginTimeout.
	LoginTimeout time.Duration
}

func NewLobby(opts NewLobbyOptions) *Lobby {
	loginTimeout := opts.LoginTimeout
	if loginTimeout <= 0 {
		loginTimeout = DefaultLoginTimeout
	}
	return &Lobby{
		repository:   opts.Repository,
		resultsChan:  opts.ResultsChan,
		engineConfig: opts.EngineConfig,
		tickInterval: opts.TickInterval,
		loginTimeout: loginTimeout,
		sessions:     make(map[string]*Session),
	}
}

// HandleConn reads the connection's login and queues it for a session.
// It has the signature of a network.ConnHandler.
func (l *Lobby) HandleConn(ctx context.Context, raw network.Conn) {
	conn := watch(raw)

	var r readResult
	select {
	case <-ctx.Done():
		conn.Close()
		return
	case <-time.After(l.loginTimeout):
		l.reject(conn, "login timed out")
		return
	case <-conn.failed:
		if !network.IsConnectionClosed(conn.err) {
			log.Warn("Failed to read login from %s: %v", conn.RemoteAddr(), conn.err)
		}
		conn.Close()
		return
	case r = <-conn.reads:
	}

	if r.err != nil {
		l.reject(conn, fmt.Sprintf("invalid login: %v", r.err))
		return
	}

	login, err := parseLogin(r.msg)
	if err != nil {
		l.reject(conn, err.Error())
		return
	}

	w, err := l.enqueue(conn, login)
	if err != nil {
		l.reject(conn, err.Error())
		return
	}
	go l.watchWaiting(ctx, w)

	ack, err := messages.NewMessage(messages.MessageTypeLogin, login)
	if err != nil {
		log.Error("Failed to build login message: %v", err)
	} else if err := conn.WriteMessage(ack); err != nil {
		log.Warn("Failed to acknowledge login for %s: %v", login.Name, err)
	}
	log.Info("%s logged in as %s from %s", login.Name, login.Role, conn.RemoteAddr())

	l.startSessions(ctx)
}

func parseLogin(msg *messages.Message) (*messages.Login, error) {
	if msg.Type != messages.MessageTypeLogin {
		return nil, fmt.Errorf("expected %s message, got %s", messages.MessageTypeLogin, msg.Type)
	}
	login := &messages.Login{}
	if err := msg.Decode(login); err != nil {
		return nil, fmt.Errorf("invalid login: %v", err)
	}
	if login.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	switch login.Role {
	case "":
		login.Role = messages.RolePlayer
	case messages.RolePlayer, messages.RoleViewer:
	default:
		return nil, fmt.Errorf("unknown role %q", login.Role)
	}
	return login, nil
}

func (l *Lobby) enqueue(conn *watchedConn, login *messages.Login) (*waiting, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	w := &waiting{conn: conn, name: login.Name, claimed: make(chan struct{})}
	if login.Role == messages.RoleViewer {
		l.viewers = append(l.viewers, w)
		return w, nil
	}
	for _, p := range l.players {
		if p.name == login.Name {
			return nil, fmt.Errorf("%s is already waiting", login.Name)
		}
	}
	l.players = append(l.players, w)
	return w, nil
}

// watchWaiting reads from a waiting connection until it is paired into a
// session. A connection that hangs up or sends closed leaves the lobby.
func (l *Lobby) watchWaiting(ctx context.Context, w *waiting) {
	for {
		select {
		case <-w.claimed:
			return
		case <-ctx.Done():
			l.leave(w)
			w.conn.Close()
			return
		case <-w.conn.failed:
			if !network.IsConnectionClosed(w.conn.err) {
				log.Warn("Failed to read from waiting %s: %v", w.name, w.conn.err)
			}
			l.leave(w)
			w.conn.Close()
			return
		case r := <-w.conn.reads:
			if r.err != nil {
				log.Warn("Dropping message from waiting %s: %v", w.name, r.err)
				continue
			}
			if r.msg.Type == messages.MessageTypeClosed {
				l.leave(w)
				// a relay that already owns the connection sees the close
				w.conn.Close()
				return
			}
			log.Debug("Ignoring %s message from waiting %s", r.msg.Type, w.name)
		}
	}
}

// leave removes w from the lobby unless it has already been paired.
func (l *Lobby) leave(w *waiting) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if w.paired {
		return
	}
	l.players = remove(l.players, w)
	l.viewers = remove(l.viewers, w)
	log.Info("%s left the lobby", w.name)
}

func remove(list []*waiting, w *waiting) []*waiting {
	for i, item := range list {
		if item == w {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func (l *Lobby) reject(conn *watchedConn, reason string) {
	log.Info("Rejecting login from %s: %s", conn.RemoteAddr(), reason)
	msg, err := messages.NewMessage(messages.MessageTypeLoginFailure, &messages.LoginFailure{Reason: reason})
	if err != nil {
		log.Error("Failed to build login failure message: %v", err)
	} else if err := conn.WriteMessage(msg); err != nil {
		log.Debug("Failed to send login failure to %s: %v", conn.RemoteAddr(), err)
	}
	conn.Close()
}

// startSessions starts a session for every waiting pair of players.
func (l *Lobby) startSessions(ctx context.Context) {
	for {
		l.lock.Lock()
		if len(l.players) < 2 {
			l.lock.Unlock()
			return
		}
		p1, p2 := l.players[0], l.players[1]
		l.players = l.players[2:]
		var viewer *waiting
		if len(l.viewers) > 0 {
			viewer = l.viewers[0]
			l.viewers = l.viewers[1:]
		}
		for _, w := range []*waiting{p1, p2, viewer} {
			if w != nil {
				w.paired = true
				close(w.claimed)
			}
		}
		l.lock.Unlock()

		if err := l.startSession(ctx, p1, p2, viewer); err != nil {
			log.Error("Failed to start session for %s vs %s: %v", p1.name, p2.name, err)
			for _, w := range []*waiting{p1, p2, viewer} {
				if w != nil {
					w.conn.Close()
				}
			}
		}
	}
}

func (l *Lobby) startSession(ctx context.Context, p1, p2, viewer *waiting) error {
	eng, err := engine.New(engine.NewEngineOptions{Config: l.engineConfig})
	if err != nil {
		return fmt.Errorf("failed to create engine: %v", err)
	}
	if err := eng.NewGame(); err != nil {
		return fmt.Errorf("failed to create game: %v", err)
	}

	waiters := []*waiting{p1, p2}
	participants := []*game.Participant{
		game.NewParticipant(uuid.NewString(), p1.name, false),
		game.NewParticipant(uuid.NewString(), p2.name, false),
	}
	session := &Session{
		ID:        uuid.NewString(),
		Player1:   p1.name,
		Player2:   p2.name,
		StartedAt: time.Now(),
	}
	if viewer != nil {
		waiters = append(waiters, viewer)
		participants = append(participants, game.NewParticipant(uuid.NewString(), viewer.name, true))
		session.Viewer = viewer.name
	}

	gm, err := game.NewGameManager(game.NewGameManagerOptions{
		ID:           session.ID,
		Engine:       eng,
		Participants: participants,
		TickInterval: l.tickInterval,
		ResultsChan:  l.resultsChan,
	})
	if err != nil {
		return fmt.Errorf("failed to create game manager: %v", err)
	}

	l.markStarted(ctx, session)

	l.lock.Lock()
	l.sessions[session.ID] = session
	l.lock.Unlock()

	for i, p := range participants {
		relay := network.NewRelay(network.NewRelayOptions{
			Conn:     waiters[i].conn,
			Inbound:  p.Inbound,
			Outbound: p.Outbound,
		})
		go relay.Start(ctx)
	}

	go func() {
		defer func() {
			l.lock.Lock()
			delete(l.sessions, session.ID)
			l.lock.Unlock()
		}()
		if err := gm.Start(ctx); err != nil {
			log.Error("Session %s failed: %v", session.ID, err)
		}
	}()

	log.Info("Started session %s: %s vs %s", session.ID, session.Player1, session.Player2)
	return nil
}

// markStarted marks the pair's tournament game as started, if there is one.
func (l *Lobby) markStarted(ctx context.Context, session *Session) {
	if l.repository == nil {
		return
	}
	exists, err := l.repository.EitherGameExists(ctx, session.Player1, session.Player2)
	if err != nil {
		log.Error("Failed to look up game for session %s: %v", session.ID, err)
		return
	}
	if !exists {
		return
	}
	if err := l.repository.StartGame(ctx, session.Player1, session.Player2); err != nil {
		log.Error("Failed to start game for session %s: %v", session.ID, err)
	}
}

// Sessions returns the running sessions, oldest first.
func (l *Lobby) Sessions() []Session {
	l.lock.Lock()
	defer l.lock.Unlock()

	sessions := make([]Session, 0, len(l.sessions))
	for _, s := range l.sessions {
		sessions = append(sessions, *s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].StartedAt.Equal(sessions[j].StartedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].StartedAt.Before(sessions[j].StartedAt)
	})
	return sessions
}

// Waiting returns the number of players and viewers waiting for a session.
func (l *Lobby) Waiting() (players int, viewers int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.players), len(l.viewers)
}
