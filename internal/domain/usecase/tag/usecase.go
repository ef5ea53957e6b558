package tag

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAllByUser(userID uint, page int, size int) (*model.Page[entity.Tag], error)
}
