package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

type User struct {
	gorm.Model
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Password            string     `json:"-" gorm:"not null"`
	Role                string     `json:"role" gorm:"default:'STUDENT'"` // TEACHER, STUDENT
	LastLogin           *time.Time `json:"last_login"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
}

// PublicUser is the trimmed-down shape embedded in course and resource responses.
type PublicUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}
