package entity

import (
	"time"

	"todo-api/internal/domain/model"
)

// TodoStatus is the lifecycle state of a todo item
type TodoStatus string

const (
	StatusOpen          TodoStatus = "OPEN"
	StatusWorking       TodoStatus = "WORKING"
	StatusPendingReview TodoStatus = "PENDING_REVIEW"
	StatusCompleted     TodoStatus = "COMPLETED"
	StatusOverdue       TodoStatus = "OVERDUE"
	StatusCancelled     TodoStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known statuses
func (s TodoStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusWorking, StatusPendingReview, StatusCompleted, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Todo is a user-owned task. CreatedAt is set once on insert and never
// updated afterwards; UserID fixes the owner at creation.
type Todo struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"-"`
	User        *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string          `gorm:"size:100;not null" json:"title"`
	Description string          `gorm:"size:1000" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	DueDate     *model.DateTime `gorm:"type:timestamptz" json:"due_date"`
	Status      TodoStatus      `gorm:"size:20;not null;default:OPEN" json:"status"`
	Tags        []Tag           `gorm:"many2many:todo_tags;constraint:OnDelete:CASCADE" json:"tags"`
}
