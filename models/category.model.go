package models

import "gorm.io/gorm"

// Category groups courses for browsing
type Category struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
