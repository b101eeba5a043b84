package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"fittrack/internal/models/request_models"
	"fittrack/internal/services"
	"fittrack/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

// ListWorkouts godoc
// @Summary List workouts
// @Description Fetch all workouts owned by the authenticated user
// @Tags Workouts
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts [get]
func (w *WorkoutController) ListWorkouts(c *gin.Context) {

	userID := c.GetString("user_id")

	workouts, err := w.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workouts, "Workouts fetched successfully")
}

// CreateWorkout godoc
// @Summary Create a workout
// @Description Create a workout owned by the authenticated user; any owner supplied by the caller is ignored
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body request_models.CreateWorkoutRequest true "Workout payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts [post]
func (w *WorkoutController) CreateWorkout(c *gin.Context) {

	var req request_models.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name must be between 1 and 30 characters")
		return
	}

	userID := c.GetString("user_id")

	workout, err := w.workoutService.CreateWorkout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, workout, "Workout created successfully")
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Delete a workout owned by the authenticated user; exercises under it are removed as well
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{workoutId} [delete]
func (w *WorkoutController) DeleteWorkout(c *gin.Context) {

	userID := c.GetString("user_id")
	workoutID := c.Param("workoutId")

	if err := w.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Workout deleted successfully")
}
