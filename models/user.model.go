package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles a user can hold. New accounts stay NEW_USER until they pick a role.
const (
	RoleNewUser    = "NEW_USER"
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage string     `gorm:"default:''"`
	Name         string     `gorm:"default:''"`
	Email        string     `gorm:"unique;not null"`
	Role         string     `gorm:"default:'NEW_USER'"` // NEW_USER, STUDENT, INSTRUCTOR, ADMIN
	Password     string     `gorm:"not null"`
	Bio          string     `gorm:"type:text"`
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `gorm:"default:false"`
}
