package db

import (
	"time"

	"todo-api/internal/domain/entity"
)

// TodoGateway persists todos. Every query is scoped by owner: a todo that
// exists but belongs to someone else behaves exactly like a missing one.
type TodoGateway interface {
	FindAllByUser(userID uint) ([]entity.Todo, error)
	FindByIDAndUser(id uint, userID uint) (*entity.Todo, error)

	// Create inserts the todo and, when tagNames is non-empty, resolves and
	// attaches its tags inside the same transaction.
	Create(todo *entity.Todo, tagNames []string) error

	// Update persists title, description, due date and status. CreatedAt and
	// the owner are never part of the update set. When replaceTags is true
	// the association is replaced with the resolved tagNames (clear-then-add);
	// an empty list clears all tags.
	Update(todo *entity.Todo, tagNames []string, replaceTags bool) error

	// DeleteByIDAndUser removes the todo and its tag associations, reporting
	// whether a row owned by userID was actually deleted.
	DeleteByIDAndUser(id uint, userID uint) (bool, error)

	// MarkOverdue flips unfinished todos with a passed due date to OVERDUE,
	// returning the number of rows updated.
	MarkOverdue(now time.Time) (int64, error)
}
