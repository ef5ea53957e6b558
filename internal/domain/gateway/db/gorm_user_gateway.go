package db

import (
	"errors"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) Create(user *entity.User) error {
	err := gateway.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrDuplicateKey
	}
	return err
}
