package db

import (
	"todo-api/internal/domain/entity"
)

type UserGateway interface {
	// FindByUsername returns nil without error when no such user exists
	FindByUsername(username string) (*entity.User, error)
	FindByID(id uint) (*entity.User, error)
	Create(user *entity.User) error
}
