package controllers_fx

import (
	"go.uber.org/fx"

	"fittrack/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewWorkoutController,
	controllers.NewExerciseController,
	controllers.NewProteinController,
)
