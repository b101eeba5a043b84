package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

type ExerciseServiceInterface interface {
	ListExercises(ctx context.Context, userID, workoutID string) ([]response_models.ExerciseResponse, error)
	CreateExercise(ctx context.Context, userID, workoutID string, request request_models.CreateExerciseRequest) (*response_models.ExerciseResponse, error)
	UpdateExercise(ctx context.Context, userID, workoutID, exerciseID string, request request_models.UpdateExerciseRequest) (*response_models.ExerciseResponse, error)
	DeleteExercise(ctx context.Context, userID, workoutID, exerciseID string) error
}

type ExerciseService struct {
	workoutRepo  repositories.WorkoutRepository
	exerciseRepo repositories.ExerciseRepository
}

func NewExerciseService(workoutRepo repositories.WorkoutRepository, exerciseRepo repositories.ExerciseRepository) ExerciseServiceInterface {
	return &ExerciseService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (e *ExerciseService) ListExercises(ctx context.Context, userID, workoutID string) ([]response_models.ExerciseResponse, error) {

	workout, err := resolveWorkout(ctx, e.workoutRepo, userID, workoutID)
	if err != nil {
		return nil, err
	}

	exercises, err := e.exerciseRepo.FindByWorkout(ctx, workout.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExerciseResponse, 0, len(exercises))
	for _, exercise := range exercises {
		out = append(out, buildExerciseResponse(&exercise))
	}
	return out, nil
}

func (e *ExerciseService) CreateExercise(ctx context.Context, userID, workoutID string, request request_models.CreateExerciseRequest) (*response_models.ExerciseResponse, error) {

	workout, err := resolveWorkout(ctx, e.workoutRepo, userID, workoutID)
	if err != nil {
		return nil, err
	}

	weight := 0.0
	if request.Weight != nil {
		if !validWeight(*request.Weight) {
			return nil, utils.FieldErrors{"weight": "Ensure that there are no more than 2 decimal places."}
		}
		weight = *request.Weight
	}

	newExercise := &db_models.Exercise{
		Name:      request.Name,
		Sets:      request.Sets,
		Reps:      request.Reps,
		Weight:    weight,
		WorkoutID: workout.ID,
	}

	if err := e.exerciseRepo.Insert(ctx, newExercise); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildExerciseResponse(newExercise)
	return &resp, nil
}

func (e *ExerciseService) UpdateExercise(ctx context.Context, userID, workoutID, exerciseID string, request request_models.UpdateExerciseRequest) (*response_models.ExerciseResponse, error) {

	exercise, err := e.resolveExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return nil, err
	}

	// Immutable fields fail the whole update before anything is applied.
	fieldErrs := utils.FieldErrors{}
	if request.Name != nil {
		fieldErrs["name"] = "This field cannot be updated."
	}
	if request.Sets != nil {
		fieldErrs["sets"] = "This field cannot be updated."
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if request.Reps != nil {
		exercise.Reps = *request.Reps
	}
	if request.Weight != nil {
		if !validWeight(*request.Weight) {
			return nil, utils.FieldErrors{"weight": "Ensure that there are no more than 2 decimal places."}
		}
		exercise.Weight = *request.Weight
	}

	if err := e.exerciseRepo.UpdateRepsAndWeight(ctx, exercise); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildExerciseResponse(exercise)
	return &resp, nil
}

func (e *ExerciseService) DeleteExercise(ctx context.Context, userID, workoutID, exerciseID string) error {

	exercise, err := e.resolveExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return err
	}

	if err := e.exerciseRepo.Delete(ctx, exercise); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// resolveExercise chains the two ownership lookups: workout first, then the
// exercise scoped to that workout. A workout owned by someone else fails
// before the exercise is ever queried, so the response cannot leak whether
// the exercise exists.
func (e *ExerciseService) resolveExercise(ctx context.Context, userID, workoutID, exerciseID string) (*db_models.Exercise, error) {

	workout, err := resolveWorkout(ctx, e.workoutRepo, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(exerciseID); err != nil {
		return nil, utils.ErrExerciseNotFound
	}

	exercise, err := e.exerciseRepo.FindByIdAndWorkout(ctx, exerciseID, workout.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exercise == nil {
		return nil, utils.ErrExerciseNotFound
	}

	return exercise, nil
}

// Weight is stored as decimal(5,2); reject values that would silently lose
// precision past two fraction digits.
func validWeight(weight float64) bool {
	scaled := weight * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func buildExerciseResponse(exercise *db_models.Exercise) response_models.ExerciseResponse {
	return response_models.ExerciseResponse{
		ID:     exercise.ID.String(),
		Name:   exercise.Name,
		Sets:   exercise.Sets,
		Reps:   exercise.Reps,
		Weight: exercise.Weight,
	}
}
