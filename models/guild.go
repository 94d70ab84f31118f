package models

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

// A Guild is a Discord server the bot has processed images for.
type Guild struct {
	ID   string `gorm:"primary_key"`
	Name string
	Jobs []Job
}

func (g Guild) String() string {
	return fmt.Sprintf("Guild{id=%v, name=%v}", g.ID, g.Name)
}

// BeforeSave is executed just before a Guild is saved into the DB
func (g *Guild) BeforeSave() error {
	if g.ID == "" {
		return errors.New("missing guild ID")
	}
	if g.Name == "" {
		return errors.New("guild name can't be empty")
	}
	return nil
}

// FindOrCreateGuild returns the guild with given ID, creating it if it
// doesn't exist yet. created is true if the guild was just created.
func FindOrCreateGuild(db *gorm.DB, id, name string) (g Guild, created bool, err error) {
	err = db.Where("id = ?", id).First(&g).Error
	if err == nil {
		return g, false, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return g, false, err
	}
	g = Guild{ID: id, Name: name}
	if err = db.Create(&g).Error; err != nil {
		return g, false, err
	}
	return g, true, nil
}
