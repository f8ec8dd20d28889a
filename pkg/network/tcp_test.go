package network

import (
	"context"
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCPConn_roundTrip(t *testing.T) {
	a, b := net.Pipe()
	client, server := NewTCPConn(a), NewTCPConn(b)
	defer client.Close()
	defer server.Close()

	sent, err := messages.NewMessage(messages.MessageTypeSetDirection, &messages.ClientSetDirection{Degrees: 45})
	require.NoError(t, err)

	errs := make(chan error, 1)
	go func() {
		errs <- client.WriteMessage(sent)
	}()

	got, err := server.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, <-errs)
	assert.Equal(t, sent.Type, got.Type)

	direction := &messages.ClientSetDirection{}
	require.NoError(t, got.Decode(direction))
	assert.Equal(t, 45.0, direction.Degrees)
}

func TestTCPConn_closed(t *testing.T) {
	a, b := net.Pipe()
	server := NewTCPConn(b)
	a.Close()

	_, err := server.ReadMessage()
	assert.True(t, IsConnectionClosed(err))
}

func TestTCPConn_oversizedFrame(t *testing.T) {
	a, b := net.Pipe()
	server := NewTCPConn(b)
	defer a.Close()
	defer server.Close()

	go func() {
		var header [4]byte
		binary.BigEndian.PutUint32(header[:], messages.MessageBufferSize+1)
		a.Write(header[:])
	}()

	_, err := server.ReadMessage()
	assert.Error(t, err)
	assert.False(t, IsConnectionClosed(err))
}

func TestTCPConn_malformedFrame(t *testing.T) {
	a, b := net.Pipe()
	client, server := NewTCPConn(a), NewTCPConn(b)
	defer client.Close()
	defer server.Close()

	go func() {
		frame := make([]byte, 4+24)
		binary.BigEndian.PutUint32(frame, 24)
		copy(frame[4:], "definitely not a message")
		a.Write(frame)
		client.WriteMessage(&messages.Message{Type: messages.MessageTypeFireMissile})
	}()

	_, err := server.ReadMessage()
	require.Error(t, err)
	assert.True(t, IsMalformedMessage(err))
	assert.False(t, IsConnectionClosed(err))

	msg, err := server.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, messages.MessageTypeFireMissile, msg.Type)
}

func TestTCPServer_Serve(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	accepted := make(chan Conn, 1)
	served := make(chan error, 1)
	go func() {
		served <- NewTCPServer(NewTCPServerOptions{}).Serve(ctx, listener, func(ctx context.Context, conn Conn) {
			accepted <- conn
		})
	}()

	raw, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer raw.Close()

	select {
	case conn := <-accepted:
		conn.Close()
	case <-time.After(5 * time.Second):
		t.Fatal("connection not accepted")
	}

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
