package course

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Course represents a learning course authored by one instructor
type Course struct {
	gorm.Model
	CreatedByID uint                `json:"created_by_id" gorm:"index;not null"`
	Title       string              `json:"title"`
	Description string              `json:"description" gorm:"type:text"`
	Price       decimal.NullDecimal `json:"price" gorm:"type:numeric(12,2)"`
	CategoryID  *uint               `json:"category_id" gorm:"index"`
	ImageURL    string              `json:"image_url"`
	IsPublished bool                `json:"is_published" gorm:"default:false"`
	IsDeleted   bool                `gorm:"default:false"`
}
