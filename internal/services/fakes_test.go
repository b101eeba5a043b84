package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/models/db_models"
)

// In-memory repository fakes. They hand out copies the way a real query
// does, so a failed service call cannot leak mutations into stored state.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account

	// proteinWrites counts MutateProtein calls that persisted something,
	// which is how the lazy-reset no-op tests observe write behavior.
	proteinWrites int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.accounts {
		if existing.Username == account.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	stored := *account
	f.accounts[account.ID.String()] = &stored
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) MutateProtein(ctx context.Context, id string, fn func(*db_models.Account) error) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}

	working := *stored
	if err := fn(&working); err != nil {
		return nil, err
	}

	if working.ProteinGoal != stored.ProteinGoal ||
		working.TodaysProtein != stored.TodaysProtein ||
		!working.ProteinLastUpdate.Equal(stored.ProteinLastUpdate) {
		*stored = working
		f.proteinWrites++
	}

	copied := working
	return &copied, nil
}

type fakeWorkoutRepo struct {
	mu       sync.Mutex
	workouts map[string]*db_models.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[string]*db_models.Workout)}
}

func (f *fakeWorkoutRepo) Insert(ctx context.Context, workout *db_models.Workout) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	stored := *workout
	f.workouts[workout.ID.String()] = &stored
	return nil
}

func (f *fakeWorkoutRepo) FindByOwner(ctx context.Context, ownerID string) ([]db_models.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db_models.Workout
	for _, workout := range f.workouts {
		if workout.OwnerID.String() == ownerID {
			out = append(out, *workout)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) FindByIdAndOwner(ctx context.Context, id, ownerID string) (*db_models.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	workout, ok := f.workouts[id]
	if !ok || workout.OwnerID.String() != ownerID {
		return nil, nil
	}
	copied := *workout
	return &copied, nil
}

func (f *fakeWorkoutRepo) Delete(ctx context.Context, workout *db_models.Workout) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.workouts, workout.ID.String())
	return nil
}

type fakeExerciseRepo struct {
	mu        sync.Mutex
	exercises map[string]*db_models.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[string]*db_models.Exercise)}
}

func (f *fakeExerciseRepo) Insert(ctx context.Context, exercise *db_models.Exercise) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	stored := *exercise
	f.exercises[exercise.ID.String()] = &stored
	return nil
}

func (f *fakeExerciseRepo) FindByWorkout(ctx context.Context, workoutID string) ([]db_models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db_models.Exercise
	for _, exercise := range f.exercises {
		if exercise.WorkoutID.String() == workoutID {
			out = append(out, *exercise)
		}
	}
	return out, nil
}

func (f *fakeExerciseRepo) FindByIdAndWorkout(ctx context.Context, id, workoutID string) (*db_models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	exercise, ok := f.exercises[id]
	if !ok || exercise.WorkoutID.String() != workoutID {
		return nil, nil
	}
	copied := *exercise
	return &copied, nil
}

func (f *fakeExerciseRepo) UpdateRepsAndWeight(ctx context.Context, exercise *db_models.Exercise) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.exercises[exercise.ID.String()]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Reps = exercise.Reps
	stored.Weight = exercise.Weight
	return nil
}

func (f *fakeExerciseRepo) Delete(ctx context.Context, exercise *db_models.Exercise) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.exercises, exercise.ID.String())
	return nil
}
