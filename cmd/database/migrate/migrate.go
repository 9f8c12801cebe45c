package migration

import (
	"fmt"

	"gorm.io/gorm"

	"recipe-book-api/entities"
)

// Migrate creates the schema if it does not exist. Safe to run on every
// startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrating recipes: %w", err)
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		return fmt.Errorf("migrating ingredients: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
