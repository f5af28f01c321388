package api

import "jobboard/internal/model"

// EditProfileView 編輯頁面的資料；employer 與 freelancer 只會出現其一
// swagger:model api.EditProfileView
type EditProfileView struct {
	User       ProfileUser        `json:"user"`
	Employer   *EmployerSection   `json:"employer,omitempty"`
	Freelancer *FreelancerSection `json:"freelancer,omitempty"`
	Email      string             `json:"email" example:"alice@example.com"`
}

type ProfileUser struct {
	Name     string `json:"name" example:"Alice"`
	Location string `json:"location" example:"Taipei"`
}

type EmployerSection struct {
	Budget float64 `json:"budget" example:"500"`
}

type FreelancerSection struct {
	Bio            string `json:"bio" example:"Dog walker"`
	ProfilePicture string `json:"profile_picture" example:"/images/default-profile.png"`
}

func NewEditProfileView(p *model.Profile, email string) EditProfileView {
	v := EditProfileView{
		User:  ProfileUser{Name: p.Name, Location: p.Location},
		Email: email,
	}
	if emp, ok := p.Employer(); ok {
		v.Employer = &EmployerSection{Budget: emp.Budget}
	}
	if fl, ok := p.Freelancer(); ok {
		v.Freelancer = &FreelancerSection{Bio: fl.Bio, ProfilePicture: fl.ProfilePicture}
	}
	return v
}
