package model

import "time"

// TodoEventType identifies a todo lifecycle transition
type TodoEventType string

const (
	TodoCreated TodoEventType = "todo.created"
	TodoUpdated TodoEventType = "todo.updated"
	TodoDeleted TodoEventType = "todo.deleted"
)

// TodoEvent is the message published to the events queue after a
// successful mutation. Publishing is best-effort and never fails the
// originating request.
type TodoEvent struct {
	EventID    string        `json:"eventId"`
	Type       TodoEventType `json:"type"`
	TodoID     uint          `json:"todoId"`
	UserID     uint          `json:"userId"`
	OccurredAt time.Time     `json:"occurredAt"`
}
