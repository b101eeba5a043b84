package response_models

type ProteinResponse struct {
	ProteinGoal   int `json:"protein_goal"`
	TodaysProtein int `json:"todays_protein"`
}
