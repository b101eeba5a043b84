package response_models

type ExerciseResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}
