package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")

	ErrProteinAmountNotPositive = errors.New("protein amount must be greater than 0")
	ErrProteinLimitExceeded     = errors.New("todays protein cannot be greater than 500")
	ErrProteinGoalOutOfRange    = errors.New("protein goal must be between 1 and 500")
)

// FieldErrors maps a field name to the reason it was rejected. It satisfies
// error so services can return it through the normal error path and
// HandleServiceError can render the map per field.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, f[k]))
	}
	return strings.Join(parts, "; ")
}
