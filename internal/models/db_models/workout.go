package db_models

import "github.com/google/uuid"

type Workout struct {
	BaseModel
	Name    string `gorm:"size:30;not null"`
	OwnerID uuid.UUID

	Exercises []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}
