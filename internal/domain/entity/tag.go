package entity

import (
	"strings"

	"gorm.io/gorm"
)

// Tag is a user-scoped label. Names are stored trimmed and lowercased;
// the (user_id, lower(name)) pair is unique, enforced by a functional
// index created during migration.
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`
	User   *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name   string `gorm:"size:50;not null" json:"name"`
}

// NormalizeTagName canonicalizes a tag name for comparison and storage.
// Idempotent: normalizing an already normalized name is a no-op.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BeforeSave normalizes the name so a tag can never be persisted denormalized
func (t *Tag) BeforeSave(tx *gorm.DB) error {
	t.Name = NormalizeTagName(t.Name)
	return nil
}
