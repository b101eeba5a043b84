package request_models

// Owner is never part of the payload; it is always the authenticated caller.
type CreateWorkoutRequest struct {
	Name string `json:"name" binding:"required,min=1,max=30"`
}
