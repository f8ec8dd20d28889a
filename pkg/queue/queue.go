package queue

import "errors"

var (
	// ErrQueueFull is returned when an item is enqueued into a full queue.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned when enqueueing into a closed queue,
	// or reading from one that is closed and drained.
	ErrQueueClosed = errors.New("queue is closed")
)

func IsQueueFull(err error) bool {
	return errors.Is(err, ErrQueueFull)
}

func IsQueueClosed(err error) bool {
	return errors.Is(err, ErrQueueClosed)
}

// Queue represents a basic queue.
type Queue interface {
	Enqueue(item interface{}) error
	Dequeue() (interface{}, error)
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
	Close()
}
