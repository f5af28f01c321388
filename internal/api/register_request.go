package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `form:"name" json:"name" validate:"required,max=100" example:"Alice"`
	Email    string `form:"email" json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" json:"password" validate:"required,min=8" example:"Secret123!"`
	Type     string `form:"type" json:"type" validate:"required,oneof=employer freelancer" example:"employer"`
	Location string `form:"location" json:"location" validate:"max=100" example:"Taipei"`
}
