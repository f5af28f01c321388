package api

import (
	"time"

	"jobboard/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Type      string    `json:"type" example:"employer"`
	Location  string    `json:"location" example:"Taipei"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Type:      string(u.Type),
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}
