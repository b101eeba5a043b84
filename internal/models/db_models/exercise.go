package db_models

import "github.com/google/uuid"

type Exercise struct {
	BaseModel
	Name      string  `gorm:"size:30;not null"`
	Sets      int     `gorm:"not null"`
	Reps      int     `gorm:"not null"`
	Weight    float64 `gorm:"type:decimal(5,2);not null;default:0"`
	WorkoutID uuid.UUID
}
