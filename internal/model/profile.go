// File: internal/model/profile.go
package model

// DefaultProfilePicture 新註冊的自由工作者預設大頭貼
const DefaultProfilePicture = "/images/default-profile.png"

// RoleProfile 是角色專屬資料的封閉集合，只有 EmployerProfile 與 FreelancerProfile 實作
type RoleProfile interface {
	UserType() UserType
	isRole()
}

type EmployerProfile struct {
	Budget float64 `json:"budget"`
}

func (EmployerProfile) UserType() UserType { return UserTypeEmployer }
func (EmployerProfile) isRole()            {}

type FreelancerProfile struct {
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
}

func (FreelancerProfile) UserType() UserType { return UserTypeFreelancer }
func (FreelancerProfile) isRole()            {}

// Profile 為 app_user 共用欄位加上一個角色專屬區塊
type Profile struct {
	Name     string
	Location string
	Role     RoleProfile
}

// Employer 在角色為雇主時回傳其資料
func (p *Profile) Employer() (EmployerProfile, bool) {
	e, ok := p.Role.(EmployerProfile)
	return e, ok
}

// Freelancer 在角色為自由工作者時回傳其資料
func (p *Profile) Freelancer() (FreelancerProfile, bool) {
	f, ok := p.Role.(FreelancerProfile)
	return f, ok
}

// ProfileChanges 描述一次個人資料更新；nil 欄位代表沿用資料庫現值
type ProfileChanges struct {
	Name           *string
	Location       *string
	Budget         *float64
	Bio            *string
	ProfilePicture *string
}
