package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" json:"password" validate:"required" example:"Secret123!"`
}
