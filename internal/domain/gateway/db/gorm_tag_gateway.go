package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
)

type GormTagGateway struct {
	DB *gorm.DB
}

var _ TagGateway = (*GormTagGateway)(nil)

func NewGormTagGateway(db *gorm.DB) *GormTagGateway {
	return &GormTagGateway{DB: db}
}

func (gateway *GormTagGateway) FindAllByUser(userID uint, offset int, limit int) ([]entity.Tag, error) {
	var tags []entity.Tag
	err := gateway.DB.
		Where("user_id = ?", userID).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (gateway *GormTagGateway) CountByUser(userID uint) (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Tag{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// resolveTags maps normalized tag names to tag rows owned by userID,
// creating missing ones. Names must already be normalized.
func resolveTags(tx *gorm.DB, userID uint, names []string) ([]entity.Tag, error) {
	tags := make([]entity.Tag, 0, len(names))
	for _, name := range names {
		tag, err := findOrCreateTag(tx, userID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// findOrCreateTag upserts a tag scoped to its owner as a single
// conditional insert. ON CONFLICT DO NOTHING makes concurrent creates of
// the same name converge on one row: the loser's insert is skipped and the
// follow-up select resolves to the winner.
func findOrCreateTag(tx *gorm.DB, userID uint, name string) (entity.Tag, error) {
	tag := entity.Tag{UserID: userID, Name: name}
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag)
	if result.Error != nil {
		return entity.Tag{}, result.Error
	}
	if result.RowsAffected == 1 {
		return tag, nil
	}

	var existing entity.Tag
	err := tx.Where("user_id = ? AND lower(name) = ?", userID, name).First(&existing).Error
	if err != nil {
		return entity.Tag{}, err
	}
	return existing, nil
}
