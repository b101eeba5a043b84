package response_models

// AccountResponse deliberately has no password field in any form.
type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
