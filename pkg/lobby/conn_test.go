package lobby

import (
	"errors"
	"testing"

	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedConn struct {
	*fakeConn
	results []readResult
}

func (c *scriptedConn) ReadMessage() (*messages.Message, error) {
	if len(c.results) == 0 {
		return c.fakeConn.ReadMessage()
	}
	r := c.results[0]
	c.results = c.results[1:]
	return r.msg, r.err
}

func TestWatchedConn_ReadMessage(t *testing.T) {
	readErr := errors.New("connection reset")
	raw := &scriptedConn{
		fakeConn: newFakeConn("scripted"),
		results: []readResult{
			{err: &network.ErrMalformedMessage{Err: errors.New("bad frame")}},
			{msg: &messages.Message{Type: messages.MessageTypeFireMissile}},
			{err: readErr},
		},
	}
	conn := watch(raw)
	defer conn.Close()

	_, err := conn.ReadMessage()
	assert.True(t, network.IsMalformedMessage(err))

	msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, messages.MessageTypeFireMissile, msg.Type)

	for i := 0; i < 2; i++ {
		_, err = conn.ReadMessage()
		assert.ErrorIs(t, err, readErr)
	}
}

func TestWatchedConn_Close(t *testing.T) {
	raw := newFakeConn("raw")
	conn := watch(raw)

	require.NoError(t, conn.Close())
	assert.True(t, raw.isClosed())

	_, err := conn.ReadMessage()
	assert.True(t, network.IsConnectionClosed(err))
}
