package todo

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAllByUser(userID uint) ([]entity.Todo, error)
	FindByIDAndUser(id uint, userID uint) (*entity.Todo, error)
	Create(userID uint, dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(id uint, userID uint, dto model.UpdateTodoDTO, partial bool) (*entity.Todo, error)
	Delete(id uint, userID uint) error
	MarkOverdue() (int64, error)
}
