package network

import (
	"context"
	"encoding/binary"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	reads  chan *messages.Message
	closed chan struct{}

	lock      sync.Mutex
	writes    []*messages.Message
	writeErrs []error
	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		reads:  make(chan *messages.Message, 16),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() (*messages.Message, error) {
	select {
	case msg, ok := <-c.reads:
		if !ok {
			return nil, errors.New("read failed")
		}
		return msg, nil
	case <-c.closed:
		return nil, &ErrConnectionClosed{}
	}
}

func (c *fakeConn) WriteMessage(msg *messages.Message) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if len(c.writeErrs) > 0 {
		err := c.writeErrs[0]
		c.writeErrs = c.writeErrs[1:]
		if err != nil {
			return err
		}
	}
	c.writes = append(c.writes, msg)
	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) RemoteAddr() string {
	return "fake"
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func startRelay(t *testing.T, conn Conn, inbound queue.Queue, outbound chan *messages.Message) <-chan struct{} {
	t.Helper()
	relay := NewRelay(NewRelayOptions{Conn: conn, Inbound: inbound, Outbound: outbound})
	done := make(chan struct{})
	go func() {
		relay.Start(context.Background())
		close(done)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func messageTypes(items []interface{}) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.(*messages.Message).Type)
	}
	return out
}

func TestRelay_readErrorSynthesizesClosed(t *testing.T) {
	conn := newFakeConn()
	inbound := queue.NewInMemoryQueue(0)
	outbound := make(chan *messages.Message)

	conn.reads <- &messages.Message{Type: messages.MessageTypeFireMissile}
	conn.reads <- &messages.Message{Type: messages.MessageTypeServerGameUpdate}
	conn.reads <- &messages.Message{Type: messages.MessageTypeEcho}
	close(conn.reads)

	done := startRelay(t, conn, inbound, outbound)
	// the session closes its side once it sees the participant leave
	go func() {
		<-conn.closed
		close(outbound)
	}()
	waitDone(t, done)

	items, err := inbound.ReadAllMessages()
	assert.True(t, queue.IsQueueClosed(err))
	assert.Equal(t, []string{
		messages.MessageTypeFireMissile,
		messages.MessageTypeEcho,
		messages.MessageTypeClosed,
	}, messageTypes(items))
	assert.True(t, conn.isClosed())
}

func TestRelay_malformedFrameKeepsConnection(t *testing.T) {
	a, b := net.Pipe()
	client, server := NewTCPConn(a), NewTCPConn(b)
	inbound := queue.NewInMemoryQueue(0)
	outbound := make(chan *messages.Message)

	done := startRelay(t, server, inbound, outbound)

	garbage := make([]byte, 4+24)
	binary.BigEndian.PutUint32(garbage, 24)
	for i := 4; i < len(garbage); i++ {
		garbage[i] = 0xff
	}
	_, err := a.Write(garbage)
	require.NoError(t, err)

	require.NoError(t, client.WriteMessage(&messages.Message{Type: messages.MessageTypeFireMissile}))
	require.Eventually(t, func() bool {
		return inbound.Size() == 1
	}, time.Second, 5*time.Millisecond)

	item, err := inbound.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, messages.MessageTypeFireMissile, item.(*messages.Message).Type)

	// the relay still answers on the same connection
	received := make(chan *messages.Message, 1)
	go func() {
		msg, err := client.ReadMessage()
		if err == nil {
			received <- msg
		}
	}()
	outbound <- &messages.Message{Type: messages.MessageTypeServerGameUpdate}
	select {
	case msg := <-received:
		assert.Equal(t, messages.MessageTypeServerGameUpdate, msg.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no message written after a malformed frame")
	}

	client.Close()
	close(outbound)
	waitDone(t, done)
}

func TestRelay_clientClosed(t *testing.T) {
	conn := newFakeConn()
	inbound := queue.NewInMemoryQueue(0)
	outbound := make(chan *messages.Message)

	conn.reads <- &messages.Message{Type: messages.MessageTypeClosed}

	done := startRelay(t, conn, inbound, outbound)
	go func() {
		<-conn.closed
		close(outbound)
	}()
	waitDone(t, done)

	items, err := inbound.ReadAllMessages()
	assert.True(t, queue.IsQueueClosed(err))
	assert.Equal(t, []string{messages.MessageTypeClosed}, messageTypes(items))
}

func TestRelay_writes(t *testing.T) {
	conn := newFakeConn()
	inbound := queue.NewInMemoryQueue(0)
	outbound := make(chan *messages.Message, 4)

	outbound <- &messages.Message{Type: messages.MessageTypeServerGameUpdate}
	outbound <- &messages.Message{Type: messages.MessageTypeClosed}

	done := startRelay(t, conn, inbound, outbound)
	waitDone(t, done)
	close(outbound)

	require.Len(t, conn.writes, 2)
	assert.Equal(t, messages.MessageTypeClosed, conn.writes[1].Type)
	assert.True(t, conn.isClosed())
}

func TestRelay_badWrites(t *testing.T) {
	writeErr := errors.New("write failed")
	repeat := func(n int) []error {
		errs := make([]error, n)
		for i := range errs {
			errs[i] = writeErr
		}
		return errs
	}

	tests := []struct {
		name       string
		writeErrs  []error
		sends      int
		wantClosed bool
	}{
		{
			name:       "ten consecutive failures",
			writeErrs:  repeat(DefaultMaxBadWrites),
			sends:      DefaultMaxBadWrites,
			wantClosed: true,
		},
		{
			name:       "success resets the count",
			writeErrs:  append(append(repeat(DefaultMaxBadWrites-1), nil), repeat(DefaultMaxBadWrites-1)...),
			sends:      2*DefaultMaxBadWrites - 1,
			wantClosed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn()
			conn.writeErrs = tt.writeErrs
			inbound := queue.NewInMemoryQueue(0)
			outbound := make(chan *messages.Message)

			done := startRelay(t, conn, inbound, outbound)
			for i := 0; i < tt.sends; i++ {
				outbound <- &messages.Message{Type: messages.MessageTypeServerGameUpdate}
			}
			// an unbuffered send only completes once the previous write has been handled
			if !tt.wantClosed {
				outbound <- &messages.Message{Type: messages.MessageTypeServerGameUpdate}
			}

			if tt.wantClosed {
				waitDone(t, done)
				assert.True(t, conn.isClosed())
				items, err := inbound.ReadAllMessages()
				assert.True(t, queue.IsQueueClosed(err))
				assert.Equal(t, []string{messages.MessageTypeClosed}, messageTypes(items))
			} else {
				assert.False(t, conn.isClosed())
				assert.Zero(t, inbound.Size())
			}
			close(outbound)
			waitDone(t, done)
		})
	}
}
