package network

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/messages"
)

// TCPServer accepts length-prefixed message connections.
type TCPServer struct {
	port int
}

type NewTCPServerOptions struct {
	Port int
}

// NewTCPServer creates a new TCP server.
func NewTCPServer(opts NewTCPServerOptions) *TCPServer {
	return &TCPServer{
		port: opts.Port,
	}
}

// Start listens until ctx is cancelled, passing every accepted connection to handler.
func (s *TCPServer) Start(ctx context.Context, handler ConnHandler) error {
	addr := fmt.Sprintf(":%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on TCP address %s: %v", addr, err)
	}
	log.Info("TCP server listening on %s", addr)
	return s.Serve(ctx, listener, handler)
}

// Serve accepts connections from listener until ctx is cancelled.
func (s *TCPServer) Serve(ctx context.Context, listener net.Listener, handler ConnHandler) error {
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				log.Info("TCP server closed")
				return nil
			}
			log.Error("Failed to accept TCP connection: %v", err)
			continue
		}
		log.Debug("New TCP connection from %s", conn.RemoteAddr().String())
		go handler(ctx, NewTCPConn(conn))
	}
}

// TCPConn frames each message with a 4-byte big-endian length prefix.
type TCPConn struct {
	conn      net.Conn
	writeLock sync.Mutex
}

func NewTCPConn(conn net.Conn) *TCPConn {
	return &TCPConn{conn: conn}
}

// WriteMessage writes a Message to the TCP connection
func (c *TCPConn) WriteMessage(msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}
	if len(b) > messages.MessageBufferSize {
		return fmt.Errorf("message of %d bytes exceeds the maximum of %d", len(b), messages.MessageBufferSize)
	}

	frame := make([]byte, 4+len(b))
	binary.BigEndian.PutUint32(frame, uint32(len(b)))
	copy(frame[4:], b)

	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("failed to write message to TCP connection: %v", err)
	}
	return nil
}

// ReadMessage reads a Message from the TCP connection
func (c *TCPConn) ReadMessage() (*messages.Message, error) {
	var header [4]byte
	if _, err := io.ReadFull(c.conn, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			return nil, &ErrConnectionClosed{}
		}
		return nil, fmt.Errorf("failed to read message header from TCP connection: %v", err)
	}

	size := binary.BigEndian.Uint32(header[:])
	if size > messages.MessageBufferSize {
		return nil, fmt.Errorf("message of %d bytes exceeds the maximum of %d", size, messages.MessageBufferSize)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(c.conn, buf); err != nil {
		return nil, fmt.Errorf("failed to read message body from TCP connection: %v", err)
	}

	msg, err := messages.DeserializeMessage(buf)
	if err != nil {
		return nil, &ErrMalformedMessage{Err: err}
	}
	return msg, nil
}

func (c *TCPConn) Close() error {
	return c.conn.Close()
}

func (c *TCPConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
