package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fittrack/internal/models/db_models"
)

// Lookups are always scoped by owner so a workout belonging to another
// account is indistinguishable from a missing one.
type WorkoutRepository interface {
	Insert(ctx context.Context, workout *db_models.Workout) error
	FindByOwner(ctx context.Context, ownerID string) ([]db_models.Workout, error)
	FindByIdAndOwner(ctx context.Context, id, ownerID string) (*db_models.Workout, error)
	Delete(ctx context.Context, workout *db_models.Workout) error
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

func (w *workoutRepository) Insert(ctx context.Context, workout *db_models.Workout) error {
	return w.db.WithContext(ctx).Create(workout).Error
}

func (w *workoutRepository) FindByOwner(ctx context.Context, ownerID string) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := w.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}

	return workouts, nil
}

func (w *workoutRepository) FindByIdAndOwner(ctx context.Context, id, ownerID string) (*db_models.Workout, error) {
	var workout db_models.Workout
	err := w.db.WithContext(ctx).
		First(&workout, "id = ? AND owner_id = ?", id, ownerID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &workout, nil
}

func (w *workoutRepository) Delete(ctx context.Context, workout *db_models.Workout) error {
	return w.db.WithContext(ctx).Delete(workout).Error
}
