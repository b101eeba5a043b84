package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fittrack/internal/models/db_models"
)

// Exercises are only reachable through their workout; callers resolve the
// workout's ownership first, so scoping by workout id is sufficient here.
type ExerciseRepository interface {
	Insert(ctx context.Context, exercise *db_models.Exercise) error
	FindByWorkout(ctx context.Context, workoutID string) ([]db_models.Exercise, error)
	FindByIdAndWorkout(ctx context.Context, id, workoutID string) (*db_models.Exercise, error)
	UpdateRepsAndWeight(ctx context.Context, exercise *db_models.Exercise) error
	Delete(ctx context.Context, exercise *db_models.Exercise) error
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{
		db: db,
	}
}

func (e *exerciseRepository) Insert(ctx context.Context, exercise *db_models.Exercise) error {
	return e.db.WithContext(ctx).Create(exercise).Error
}

func (e *exerciseRepository) FindByWorkout(ctx context.Context, workoutID string) ([]db_models.Exercise, error) {
	var exercises []db_models.Exercise
	err := e.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("created_at").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}

	return exercises, nil
}

func (e *exerciseRepository) FindByIdAndWorkout(ctx context.Context, id, workoutID string) (*db_models.Exercise, error) {
	var exercise db_models.Exercise
	err := e.db.WithContext(ctx).
		First(&exercise, "id = ? AND workout_id = ?", id, workoutID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &exercise, nil
}

func (e *exerciseRepository) UpdateRepsAndWeight(ctx context.Context, exercise *db_models.Exercise) error {
	return e.db.WithContext(ctx).
		Model(exercise).
		Select("reps", "weight").
		Updates(exercise).Error
}

func (e *exerciseRepository) Delete(ctx context.Context, exercise *db_models.Exercise) error {
	return e.db.WithContext(ctx).Delete(exercise).Error
}
