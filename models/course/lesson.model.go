package course

import "gorm.io/gorm"

// Lesson represents a single piece of content within a chapter.
// CourseID is denormalized so the course publish gate can check for
// media-bearing lessons without joining through chapters.
type Lesson struct {
	gorm.Model
	ChapterID   uint   `json:"chapter_id" gorm:"index;not null"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	MediaURL    string `json:"media_url"`
	Duration    string `json:"duration"` // e.g. "12:34", resolved from the media service
	Position    int    `json:"position" gorm:"default:0"`
	IsFree      bool   `json:"is_free" gorm:"default:false"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
