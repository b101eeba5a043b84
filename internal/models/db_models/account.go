package db_models

import (
	"gorm.io/gorm"
	"strings"
	"time"
)

type Account struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string

	ProteinGoal       int       `gorm:"not null;default:150"`
	TodaysProtein     int       `gorm:"not null;default:0"`
	ProteinLastUpdate time.Time `gorm:"type:date"`

	Workouts []Workout `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// Usernames are stored lowercase so the unique index doubles as the
// case-insensitive uniqueness check.
func (a *Account) BeforeSave(tx *gorm.DB) error {
	a.Username = strings.ToLower(a.Username)
	return nil
}
