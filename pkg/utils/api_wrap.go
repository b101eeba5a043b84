package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func respondFieldErrors(c *gin.Context, fields FieldErrors) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		TraceID: traceID(c),
		Errors:  fields,
	})
}

// HandleServiceError maps service-layer errors onto the response envelope.
// Not-found covers both absent records and records owned by another account;
// callers never see which of the two it was.
func HandleServiceError(c *gin.Context, err error) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		respondFieldErrors(c, fields)
		return
	}

	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		RespondError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, ErrExerciseNotFound):
		RespondError(c, http.StatusNotFound, "Exercise not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrProteinAmountNotPositive),
		errors.Is(err, ErrProteinLimitExceeded),
		errors.Is(err, ErrProteinGoalOutOfRange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
