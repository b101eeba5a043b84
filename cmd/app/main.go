package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"

	"fittrack/cmd/fx/account_fx"
	"fittrack/cmd/fx/controllers_fx"
	"fittrack/cmd/fx/db_fx"
	"fittrack/cmd/fx/exercise_fx"
	"fittrack/cmd/fx/protein_fx"
	"fittrack/cmd/fx/workout_fx"
	"fittrack/internal/api/controllers"
	"fittrack/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		workout_fx.Module,
		exercise_fx.Module,
		protein_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	workoutController *controllers.WorkoutController,
	exerciseController *controllers.ExerciseController,
	proteinController *controllers.ProteinController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, workoutController, exerciseController, proteinController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	workoutController *controllers.WorkoutController,
	exerciseController *controllers.ExerciseController,
	proteinController *controllers.ProteinController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	workoutsGroup := r.Group("/workouts")
	workoutsGroup.Use(middleware.JWTAuthMiddleware())
	workoutsGroup.GET("", workoutController.ListWorkouts)
	workoutsGroup.POST("", workoutController.CreateWorkout)
	workoutsGroup.DELETE("/:workoutId", workoutController.DeleteWorkout)
	workoutsGroup.GET("/:workoutId/exercises", exerciseController.ListExercises)
	workoutsGroup.POST("/:workoutId/exercises", exerciseController.CreateExercise)
	workoutsGroup.PATCH("/:workoutId/exercises/:exerciseId", exerciseController.UpdateExercise)
	workoutsGroup.DELETE("/:workoutId/exercises/:exerciseId", exerciseController.DeleteExercise)

	proteinGroup := r.Group("/protein")
	proteinGroup.Use(middleware.JWTAuthMiddleware())
	proteinGroup.GET("", proteinController.GetProtein)
	proteinGroup.PATCH("", proteinController.UpdateProtein)
}
