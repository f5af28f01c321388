// File: internal/model/user.go
package model

import (
	"errors"
	"time"
)

// UserType 區分雇主與自由工作者，建立後不可變更
type UserType string

const (
	UserTypeEmployer   UserType = "employer"
	UserTypeFreelancer UserType = "freelancer"
)

// ErrUnknownUserType 表示 type 欄位不是 employer 或 freelancer
var ErrUnknownUserType = errors.New("unknown user type")

// Valid 回報是否為已知的使用者類型
func (t UserType) Valid() bool {
	return t == UserTypeEmployer || t == UserTypeFreelancer
}

// ParseUserType 將字串轉為 UserType，未知值回傳 ErrUnknownUserType
func ParseUserType(s string) (UserType, error) {
	t := UserType(s)
	if !t.Valid() {
		return "", ErrUnknownUserType
	}
	return t, nil
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Type         UserType  `db:"type" json:"type"`
	Location     string    `db:"location" json:"location"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
