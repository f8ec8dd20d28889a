package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/arena/pkg/messages"
)

// Conn is a message-oriented connection to a remote participant.
// ReadMessage and WriteMessage may be called concurrently with each other.
type Conn interface {
	ReadMessage() (*messages.Message, error)
	WriteMessage(msg *messages.Message) error
	Close() error
	RemoteAddr() string
}

// ConnHandler takes ownership of a newly accepted connection.
type ConnHandler func(ctx context.Context, conn Conn)

// ErrConnectionClosed is returned when the remote side closed the connection
type ErrConnectionClosed struct{}

func (e *ErrConnectionClosed) Error() string {
	return "connection closed"
}

func IsConnectionClosed(err error) bool {
	var target *ErrConnectionClosed
	return errors.As(err, &target)
}

// ErrMalformedMessage is returned for a complete frame that does not decode.
// The connection is still usable.
type ErrMalformedMessage struct {
	Err error
}

func (e *ErrMalformedMessage) Error() string {
	return fmt.Sprintf("malformed message: %v", e.Err)
}

func (e *ErrMalformedMessage) Unwrap() error {
	return e.Err
}

func IsMalformedMessage(err error) bool {
	var target *ErrMalformedMessage
	return errors.As(err, &target)
}
