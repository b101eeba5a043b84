package services

import (
	"context"

	"github.com/google/uuid"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

type WorkoutServiceInterface interface {
	ListWorkouts(ctx context.Context, userID string) ([]response_models.WorkoutResponse, error)
	CreateWorkout(ctx context.Context, userID string, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error)
	DeleteWorkout(ctx context.Context, userID string, workoutID string) error
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo: workoutRepo,
	}
}

func (w *WorkoutService) ListWorkouts(ctx context.Context, userID string) ([]response_models.WorkoutResponse, error) {

	workouts, err := w.workoutRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		out = append(out, buildWorkoutResponse(&workout))
	}
	return out, nil
}

func (w *WorkoutService) CreateWorkout(ctx context.Context, userID string, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error) {

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	newWorkout := &db_models.Workout{
		Name:    request.Name,
		OwnerID: ownerID,
	}

	if err := w.workoutRepo.Insert(ctx, newWorkout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildWorkoutResponse(newWorkout)
	return &resp, nil
}

func (w *WorkoutService) DeleteWorkout(ctx context.Context, userID string, workoutID string) error {

	workout, err := resolveWorkout(ctx, w.workoutRepo, userID, workoutID)
	if err != nil {
		return err
	}

	if err := w.workoutRepo.Delete(ctx, workout); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// resolveWorkout returns the workout only when it exists and belongs to the
// caller. Every failure mode collapses into ErrWorkoutNotFound so responses
// never reveal whether the workout exists under another account.
func resolveWorkout(ctx context.Context, repo repositories.WorkoutRepository, userID, workoutID string) (*db_models.Workout, error) {
	if _, err := uuid.Parse(workoutID); err != nil {
		return nil, utils.ErrWorkoutNotFound
	}

	workout, err := repo.FindByIdAndOwner(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	return workout, nil
}

func buildWorkoutResponse(workout *db_models.Workout) response_models.WorkoutResponse {
	return response_models.WorkoutResponse{
		ID:      workout.ID.String(),
		Name:    workout.Name,
		OwnerID: workout.OwnerID.String(),
	}
}
