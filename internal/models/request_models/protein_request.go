package request_models

// Both fields are optional and independent; todays_protein itself is never
// settable directly, only via ProteinToAdd.
type UpdateProteinRequest struct {
	ProteinGoal  *int `json:"protein_goal"`
	ProteinToAdd *int `json:"protein_to_add"`
}
