package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"fittrack/internal/models/request_models"
	"fittrack/internal/services"
	"fittrack/pkg/utils"
)

type ExerciseController struct {
	exerciseService services.ExerciseServiceInterface
}

func NewExerciseController(exerciseService services.ExerciseServiceInterface) *ExerciseController {
	return &ExerciseController{
		exerciseService: exerciseService,
	}
}

// ListExercises godoc
// @Summary List exercises of a workout
// @Description Fetch all exercises under a workout owned by the authenticated user
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{workoutId}/exercises [get]
func (e *ExerciseController) ListExercises(c *gin.Context) {

	userID := c.GetString("user_id")
	workoutID := c.Param("workoutId")

	exercises, err := e.exerciseService.ListExercises(c.Request.Context(), userID, workoutID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercises, "Exercises fetched successfully")
}

// CreateExercise godoc
// @Summary Create an exercise
// @Description Add an exercise to a workout owned by the authenticated user; weight defaults to 0.00 when omitted
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param request body request_models.CreateExerciseRequest true "Exercise payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{workoutId}/exercises [post]
func (e *ExerciseController) CreateExercise(c *gin.Context) {

	var req request_models.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid exercise payload")
		return
	}

	userID := c.GetString("user_id")
	workoutID := c.Param("workoutId")

	exercise, err := e.exerciseService.CreateExercise(c.Request.Context(), userID, workoutID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, exercise, "Exercise created successfully")
}

// UpdateExercise godoc
// @Summary Update an exercise
// @Description Update reps and weight of an exercise; name and sets are immutable and rejected per field
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Param request body request_models.UpdateExerciseRequest true "Exercise update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{workoutId}/exercises/{exerciseId} [patch]
func (e *ExerciseController) UpdateExercise(c *gin.Context) {

	var req request_models.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid exercise payload")
		return
	}

	userID := c.GetString("user_id")
	workoutID := c.Param("workoutId")
	exerciseID := c.Param("exerciseId")

	exercise, err := e.exerciseService.UpdateExercise(c.Request.Context(), userID, workoutID, exerciseID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercise, "Exercise updated successfully")
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Description Delete an exercise under a workout owned by the authenticated user
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{workoutId}/exercises/{exerciseId} [delete]
func (e *ExerciseController) DeleteExercise(c *gin.Context) {

	userID := c.GetString("user_id")
	workoutID := c.Param("workoutId")
	exerciseID := c.Param("exerciseId")

	if err := e.exerciseService.DeleteExercise(c.Request.Context(), userID, workoutID, exerciseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Exercise deleted successfully")
}
