package db

import (
	"todo-api/internal/domain/entity"
)

type TagGateway interface {
	FindAllByUser(userID uint, offset int, limit int) ([]entity.Tag, error)
	CountByUser(userID uint) (int64, error)
}
