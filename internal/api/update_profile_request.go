package api

import "jobboard/internal/model"

// UpdateProfileRequest 所有欄位皆可省略；省略的欄位保持原值
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name           *string  `form:"name" json:"name" validate:"omitempty,max=100" example:"Alice"`
	Location       *string  `form:"location" json:"location" validate:"omitempty,max=100" example:"Taipei"`
	Budget         *float64 `form:"budget" json:"budget" validate:"omitempty,gte=0,lte=9999999999.99" example:"500"`
	Bio            *string  `form:"bio" json:"bio" validate:"omitempty,max=2000" example:"Dog walker"`
	ProfilePicture *string  `form:"profile_picture" json:"profile_picture" validate:"omitempty,max=500" example:"/images/alice.png"`
}

func (r UpdateProfileRequest) Changes() model.ProfileChanges {
	return model.ProfileChanges{
		Name:           r.Name,
		Location:       r.Location,
		Budget:         r.Budget,
		Bio:            r.Bio,
		ProfilePicture: r.ProfilePicture,
	}
}
