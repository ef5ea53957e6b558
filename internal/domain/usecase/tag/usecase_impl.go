package tag

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type tagUseCase struct {
	gateway db.TagGateway
}

func NewTagUseCase(gateway db.TagGateway) UseCase {
	return &tagUseCase{
		gateway: gateway,
	}
}

func (uc *tagUseCase) FindAllByUser(userID uint, page int, size int) (*model.Page[entity.Tag], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}

	tags, err := uc.gateway.FindAllByUser(userID, page*size, size)
	if err != nil {
		return nil, err
	}

	total, err := uc.gateway.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return model.NewPage(tags, page, size, total), nil
}
