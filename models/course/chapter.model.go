package course

import "gorm.io/gorm"

// Chapter represents a section within a course. Position defines display
// order relative to sibling chapters; gaps and collisions are tolerated.
type Chapter struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Position    int    `json:"position" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
