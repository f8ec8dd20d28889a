package lobby

import (
	"context"
	"sync"
	"testing"
	"time"

	mockrepositories "github.com/cbodonnell/arena/mocks/github.com/cbodonnell/arena/pkg/repositories"
	"github.com/cbodonnell/arena/pkg/game/engine"
	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	name      string
	reads     chan *messages.Message
	closed    chan struct{}
	closeOnce sync.Once

	lock   sync.Mutex
	writes []*messages.Message
}

func newFakeConn(name string) *fakeConn {
	return &fakeConn{
		name:   name,
		reads:  make(chan *messages.Message, 16),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() (*messages.Message, error) {
	select {
	case msg := <-c.reads:
		return msg, nil
	case <-c.closed:
		return nil, &network.ErrConnectionClosed{}
	}
}

func (c *fakeConn) WriteMessage(msg *messages.Message) error {
	select {
	case <-c.closed:
		return &network.ErrConnectionClosed{}
	default:
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.writes = append(c.writes, msg)
	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) RemoteAddr() string {
	return c.name
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *fakeConn) firstWrite() *messages.Message {
	c.lock.Lock()
	defer c.lock.Unlock()
	if len(c.writes) == 0 {
		return nil
	}
	return c.writes[0]
}

func loginConn(t *testing.T, name, role string) *fakeConn {
	t.Helper()
	conn := newFakeConn(name)
	msg, err := messages.NewMessage(messages.MessageTypeLogin, &messages.Login{Name: name, Role: role})
	require.NoError(t, err)
	conn.reads <- msg
	return conn
}

func newTestLobby(opts NewLobbyOptions) *Lobby {
	opts.EngineConfig = engine.DefaultConfig()
	if opts.TickInterval == 0 {
		opts.TickInterval = 5 * time.Millisecond
	}
	return NewLobby(opts)
}

func assertLoginFailure(t *testing.T, conn *fakeConn) {
	t.Helper()
	assert.True(t, conn.isClosed())
	msg := conn.firstWrite()
	require.NotNil(t, msg)
	assert.Equal(t, messages.MessageTypeLoginFailure, msg.Type)

	failure := &messages.LoginFailure{}
	require.NoError(t, msg.Decode(failure))
	assert.NotEmpty(t, failure.Reason)
}

func TestLobby_rejectsBadLogin(t *testing.T) {
	echo, err := messages.NewMessage(messages.MessageTypeEcho, &messages.Echo{Text: "hi"})
	require.NoError(t, err)
	noName, err := messages.NewMessage(messages.MessageTypeLogin, &messages.Login{Role: messages.RolePlayer})
	require.NoError(t, err)
	badRole, err := messages.NewMessage(messages.MessageTypeLogin, &messages.Login{Name: "alice", Role: "referee"})
	require.NoError(t, err)

	tests := []struct {
		name string
		msg  *messages.Message
	}{
		{name: "not a login", msg: echo},
		{name: "missing name", msg: noName},
		{name: "unknown role", msg: badRole},
		{name: "no payload", msg: &messages.Message{Type: messages.MessageTypeLogin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLobby(NewLobbyOptions{})
			conn := newFakeConn("conn")
			conn.reads <- tt.msg

			l.HandleConn(context.Background(), conn)

			assertLoginFailure(t, conn)
			players, viewers := l.Waiting()
			assert.Zero(t, players)
			assert.Zero(t, viewers)
		})
	}
}

func TestLobby_loginTimeout(t *testing.T) {
	l := newTestLobby(NewLobbyOptions{LoginTimeout: 10 * time.Millisecond})
	conn := newFakeConn("silent")

	l.HandleConn(context.Background(), conn)

	assertLoginFailure(t, conn)
}

func TestLobby_duplicateName(t *testing.T) {
	l := newTestLobby(NewLobbyOptions{})
	ctx := context.Background()

	first := loginConn(t, "alice", messages.RolePlayer)
	l.HandleConn(ctx, first)
	assert.False(t, first.isClosed())
	assert.Equal(t, messages.MessageTypeLogin, first.firstWrite().Type)

	second := loginConn(t, "alice", messages.RolePlayer)
	l.HandleConn(ctx, second)
	assertLoginFailure(t, second)

	players, _ := l.Waiting()
	assert.Equal(t, 1, players)
}

func TestLobby_startsSession(t *testing.T) {
	repo := mockrepositories.NewRepository(t)
	repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(true, nil)
	repo.EXPECT().StartGame(mock.Anything, "alice", "bob").Return(nil)

	l := newTestLobby(NewLobbyOptions{Repository: repo})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer := loginConn(t, "carol", messages.RoleViewer)
	l.HandleConn(ctx, viewer)
	alice := loginConn(t, "alice", "")
	l.HandleConn(ctx, alice)
	assert.Empty(t, l.Sessions())

	bob := loginConn(t, "bob", messages.RolePlayer)
	l.HandleConn(ctx, bob)

	sessions := l.Sessions()
	require.Len(t, sessions, 1)
	assert.NotEmpty(t, sessions[0].ID)
	assert.Equal(t, "alice", sessions[0].Player1)
	assert.Equal(t, "bob", sessions[0].Player2)
	assert.Equal(t, "carol", sessions[0].Viewer)

	players, viewers := l.Waiting()
	assert.Zero(t, players)
	assert.Zero(t, viewers)

	for _, conn := range []*fakeConn{viewer, alice, bob} {
		assert.Equal(t, messages.MessageTypeLogin, conn.firstWrite().Type)
	}

	cancel()
	assert.Eventually(t, func() bool {
		return len(l.Sessions()) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return alice.isClosed() && bob.isClosed() && viewer.isClosed()
	}, time.Second, 5*time.Millisecond)
}

func TestLobby_friendlySession(t *testing.T) {
	repo := mockrepositories.NewRepository(t)
	repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(false, nil)

	l := newTestLobby(NewLobbyOptions{Repository: repo})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l.HandleConn(ctx, loginConn(t, "alice", messages.RolePlayer))
	l.HandleConn(ctx, loginConn(t, "bob", messages.RolePlayer))

	sessions := l.Sessions()
	require.Len(t, sessions, 1)
	assert.Empty(t, sessions[0].Viewer)
}

func (c *fakeConn) wrote(messageType string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, msg := range c.writes {
		if msg.Type == messageType {
			return true
		}
	}
	return false
}

func TestLobby_waitingHangUp(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		hangUp func(conn *fakeConn)
	}{
		{
			name:   "player connection drops",
			role:   messages.RolePlayer,
			hangUp: func(conn *fakeConn) { conn.Close() },
		},
		{
			name: "player sends closed",
			role: messages.RolePlayer,
			hangUp: func(conn *fakeConn) {
				conn.reads <- &messages.Message{Type: messages.MessageTypeClosed}
			},
		},
		{
			name:   "viewer connection drops",
			role:   messages.RoleViewer,
			hangUp: func(conn *fakeConn) { conn.Close() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLobby(NewLobbyOptions{})
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			alice := loginConn(t, "alice", tt.role)
			l.HandleConn(ctx, alice)
			players, viewers := l.Waiting()
			assert.Equal(t, 1, players+viewers)

			tt.hangUp(alice)
			require.Eventually(t, func() bool {
				players, viewers := l.Waiting()
				return players == 0 && viewers == 0
			}, time.Second, 5*time.Millisecond)
			assert.True(t, alice.isClosed())

			l.HandleConn(ctx, loginConn(t, "bob", messages.RolePlayer))
			assert.Empty(t, l.Sessions())
			players, viewers = l.Waiting()
			assert.Equal(t, 1, players)
			assert.Zero(t, viewers)
		})
	}
}

func TestLobby_waitingIgnoresChatter(t *testing.T) {
	l := newTestLobby(NewLobbyOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alice := loginConn(t, "alice", messages.RolePlayer)
	l.HandleConn(ctx, alice)
	alice.reads <- &messages.Message{Type: messages.MessageTypeFireMissile}

	assert.Never(t, func() bool {
		players, _ := l.Waiting()
		return players != 1
	}, 50*time.Millisecond, 5*time.Millisecond)
	assert.False(t, alice.isClosed())
}

func TestLobby_handsWaitingConnToSession(t *testing.T) {
	l := newTestLobby(NewLobbyOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alice := loginConn(t, "alice", messages.RolePlayer)
	l.HandleConn(ctx, alice)
	l.HandleConn(ctx, loginConn(t, "bob", messages.RolePlayer))
	require.Len(t, l.Sessions(), 1)

	echo, err := messages.NewMessage(messages.MessageTypeEcho, &messages.Echo{Text: "hi"})
	require.NoError(t, err)
	// the lobby may still drop a message sent right as the session starts
	assert.Eventually(t, func() bool {
		select {
		case alice.reads <- echo:
		default:
		}
		return alice.wrote(messages.MessageTypeEcho)
	}, time.Second, 5*time.Millisecond)
}
