package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
)

// TodoEventGateway publishes todo lifecycle events. Publishing is
// best-effort: failures are logged, never propagated to the caller.
type TodoEventGateway interface {
	Publish(eventType model.TodoEventType, todo *entity.Todo)
}

type SenderTodoEventGateway struct {
	sender    Sender
	queueName string
}

var _ TodoEventGateway = (*SenderTodoEventGateway)(nil)

func NewSenderTodoEventGateway(sender Sender, queueName string) *SenderTodoEventGateway {
	return &SenderTodoEventGateway{sender: sender, queueName: queueName}
}

func (gateway *SenderTodoEventGateway) Publish(eventType model.TodoEventType, todo *entity.Todo) {
	event := model.TodoEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		TodoID:     todo.ID,
		UserID:     todo.UserID,
		OccurredAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := gateway.sender.SendMessage(ctx, gateway.queueName, event); err != nil {
			log.Error("Failed to publish todo event",
				zap.String("event_id", event.EventID),
				zap.String("type", string(eventType)),
				zap.Error(err),
			)
		}
	}()
}

// NoopTodoEventGateway is used when no events queue is configured
type NoopTodoEventGateway struct{}

var _ TodoEventGateway = (*NoopTodoEventGateway)(nil)

func NewNoopTodoEventGateway() *NoopTodoEventGateway {
	return &NoopTodoEventGateway{}
}

func (gateway *NoopTodoEventGateway) Publish(eventType model.TodoEventType, todo *entity.Todo) {}
