package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAllByUser(userID uint) ([]entity.Todo, error) {
	var todos []entity.Todo
	err := gateway.DB.
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByIDAndUser(id uint, userID uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.
		Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(todo *entity.Todo, tagNames []string) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(todo).Error; err != nil {
			return err
		}

		tags, err := resolveTags(tx, todo.UserID, tagNames)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(todo).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}
		todo.Tags = tags
		return nil
	})
}

func (gateway *GormTodoGateway) Update(todo *entity.Todo, tagNames []string, replaceTags bool) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		// created_at and user_id stay out of the update set; the stored
		// originals always win over anything a caller supplied.
		err := tx.Model(&entity.Todo{}).
			Where("id = ?", todo.ID).
			Updates(map[string]interface{}{
				"title":       todo.Title,
				"description": todo.Description,
				"due_date":    todo.DueDate,
				"status":      todo.Status,
			}).Error
		if err != nil {
			return err
		}

		if !replaceTags {
			return nil
		}

		tags, err := resolveTags(tx, todo.UserID, tagNames)
		if err != nil {
			return err
		}
		if err := tx.Model(todo).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		todo.Tags = tags
		return nil
	})
}

func (gateway *GormTodoGateway) DeleteByIDAndUser(id uint, userID uint) (bool, error) {
	var deleted bool
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		var todo entity.Todo
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// clears todo_tags join rows, never the tag rows themselves
		if err := tx.Model(&todo).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&todo).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (gateway *GormTodoGateway) MarkOverdue(now time.Time) (int64, error) {
	result := gateway.DB.Model(&entity.Todo{}).
		Where("due_date IS NOT NULL AND due_date < ?", now).
		Where("status IN ?", []entity.TodoStatus{
			entity.StatusOpen,
			entity.StatusWorking,
			entity.StatusPendingReview,
		}).
		Update("status", entity.StatusOverdue)
	return result.RowsAffected, result.Error
}
