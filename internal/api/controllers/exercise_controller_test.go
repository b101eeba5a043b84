package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/pkg/utils"
)

type stubExerciseService struct {
	updateErr  error
	updateResp *response_models.ExerciseResponse
}

func (s *stubExerciseService) ListExercises(ctx context.Context, userID, workoutID string) ([]response_models.ExerciseResponse, error) {
	return nil, nil
}

func (s *stubExerciseService) CreateExercise(ctx context.Context, userID, workoutID string, request request_models.CreateExerciseRequest) (*response_models.ExerciseResponse, error) {
	return nil, nil
}

func (s *stubExerciseService) UpdateExercise(ctx context.Context, userID, workoutID, exerciseID string, request request_models.UpdateExerciseRequest) (*response_models.ExerciseResponse, error) {
	return s.updateResp, s.updateErr
}

func (s *stubExerciseService) DeleteExercise(ctx context.Context, userID, workoutID, exerciseID string) error {
	return nil
}

func exerciseTestRouter(svc *stubExerciseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewExerciseController(svc)

	r := gin.New()
	r.PATCH("/workouts/:workoutId/exercises/:exerciseId", func(c *gin.Context) {
		c.Set("user_id", "test-user")
		controller.UpdateExercise(c)
	})
	return r
}

func TestUpdateExercise_PerFieldErrorsRenderedInEnvelope(t *testing.T) {
	svc := &stubExerciseService{
		updateErr: utils.FieldErrors{
			"name": "This field cannot be updated.",
			"sets": "This field cannot be updated.",
		},
	}
	r := exerciseTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/workouts/w1/exercises/e1",
		strings.NewReader(`{"name":"squat","sets":5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)

	fields, ok := resp.Errors.(map[string]interface{})
	require.True(t, ok, "errors must be a field map")
	assert.Equal(t, "This field cannot be updated.", fields["name"])
	assert.Equal(t, "This field cannot be updated.", fields["sets"])
}

func TestUpdateExercise_NotFoundStaysGeneric(t *testing.T) {
	svc := &stubExerciseService{updateErr: utils.ErrWorkoutNotFound}
	r := exerciseTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/workouts/w1/exercises/e1",
		strings.NewReader(`{"reps":3}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "owner",
		"not-found response must not hint at ownership")
}

func TestUpdateExercise_Success(t *testing.T) {
	svc := &stubExerciseService{
		updateResp: &response_models.ExerciseResponse{
			ID: "e1", Name: "bench press", Sets: 3, Reps: 8, Weight: 62.5,
		},
	}
	r := exerciseTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/workouts/w1/exercises/e1",
		strings.NewReader(`{"reps":8,"weight":62.5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reps":8`)
}
