package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue is at capacity.
var ErrQueueFull = errors.New("queue is full")

// Queue is a FIFO hand-off between the game loop and its producers/consumers.
// Implementations must be thread-safe.
type Queue interface {
	// Enqueue adds an item to the end of the queue without blocking.
	Enqueue(item interface{}) error
	// Dequeue removes and returns the item at the front of the queue.
	// It returns false when the queue is empty.
	Dequeue() (interface{}, bool)
	// Size returns the number of pending items.
	Size() int
	// ReadAllMessages drains and returns all pending items in order.
	ReadAllMessages() ([]interface{}, error)
	// ClearQueue discards all pending items.
	ClearQueue()
}
