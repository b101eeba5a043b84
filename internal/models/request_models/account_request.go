package request_models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
