package gorm

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/resource"
)

var Db *gorm.DB

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	var err error
	// TranslateError maps driver unique-violations to gorm.ErrDuplicatedKey,
	// which the tag upsert and user registration rely on.
	Db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Fail to connect Database: %v", err)
	}
}

// Migrate creates the schema. The per-user case-insensitive tag name
// uniqueness needs a functional index, which AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}, &entity.Tag{}, &entity.Todo{}); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_user_lower_name ON tags (user_id, lower(name))",
	).Error
	if err != nil {
		return fmt.Errorf("tag uniqueness index creation failed: %w", err)
	}
	return nil
}
