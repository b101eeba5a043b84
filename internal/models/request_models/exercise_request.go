package request_models

type CreateExerciseRequest struct {
	Name   string   `json:"name" binding:"required,min=1,max=30"`
	Sets   int      `json:"sets" binding:"required,min=1,max=99"`
	Reps   int      `json:"reps" binding:"required,min=1,max=99"`
	Weight *float64 `json:"weight" binding:"omitempty,min=0,max=999.99"`
}

// UpdateExerciseRequest captures every exercise field so that attempts to
// change an immutable one can be rejected with a per-field error rather than
// silently dropped during binding.
type UpdateExerciseRequest struct {
	Name   *string  `json:"name"`
	Sets   *int     `json:"sets"`
	Reps   *int     `json:"reps" binding:"omitempty,min=1,max=99"`
	Weight *float64 `json:"weight" binding:"omitempty,min=0,max=999.99"`
}
