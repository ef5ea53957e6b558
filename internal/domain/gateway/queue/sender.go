package queue

import "context"

// Sender sends a message to a named queue
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
}
