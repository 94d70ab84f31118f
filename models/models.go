// Package models holds the database representation of processed images.
package models

import "github.com/jinzhu/gorm"

// Migrate performs automatic database migration.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Guild{},
		&Job{},
	).Error
}
