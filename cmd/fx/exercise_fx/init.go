package exercise_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

var Module = fx.Provide(
	provideExerciseService, provideExerciseRepo)

func provideExerciseRepo(db *gorm.DB) repositories.ExerciseRepository {
	return repositories.NewExerciseRepository(db)
}

func provideExerciseService(workoutRepo repositories.WorkoutRepository, exerciseRepo repositories.ExerciseRepository) services.ExerciseServiceInterface {
	return services.NewExerciseService(workoutRepo, exerciseRepo)
}
