package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course they paid for. Created exactly once
// per (user, course) pair by payment settlement; never deleted or updated
// by the ordering/publishing code.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	EnrolledAt time.Time `json:"enrolled_at"`
	IsDeleted  bool      `gorm:"default:false"`
}

// LessonProgress tracks a user's completion of a single lesson.
// Upserted on each completion toggle, unique per (user, lesson).
type LessonProgress struct {
	gorm.Model
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	LessonID    uint `json:"lesson_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	IsCompleted bool `json:"is_completed" gorm:"default:false"`
	IsDeleted   bool `gorm:"default:false"`
}
