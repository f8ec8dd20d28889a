package lobby

import (
	"sync"

	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/network"
)

type readResult struct {
	msg *messages.Message
	err error
}

// watchedConn owns the only reader of the underlying connection, so the lobby
// can watch a waiting connection and later hand it to a relay without losing
// a read in flight. Malformed messages are delivered as reads. Any other read
// error is sticky and ends the reader.
type watchedConn struct {
	network.Conn

	reads  chan readResult
	failed chan struct{}
	err    error

	closed    chan struct{}
	closeOnce sync.Once
}

func watch(conn network.Conn) *watchedConn {
	c := &watchedConn{
		Conn:   conn,
		reads:  make(chan readResult),
		failed: make(chan struct{}),
		closed: make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *watchedConn) readLoop() {
	for {
		msg, err := c.Conn.ReadMessage()
		if err != nil && !network.IsMalformedMessage(err) {
			c.err = err
			close(c.failed)
			return
		}
		select {
		case c.reads <- readResult{msg: msg, err: err}:
		case <-c.closed:
			return
		}
	}
}

func (c *watchedConn) ReadMessage() (*messages.Message, error) {
	select {
	case r := <-c.reads:
		return r.msg, r.err
	case <-c.failed:
		return nil, c.err
	case <-c.closed:
		return nil, &network.ErrConnectionClosed{}
	}
}

func (c *watchedConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return c.Conn.Close()
}
