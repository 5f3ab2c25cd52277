package courseService

import (
	courseModels "eduflex/models/course"

	"gorm.io/gorm"
)

// PositionUpdate assigns a new position to one sibling item.
type PositionUpdate struct {
	ID       uint `json:"id" validate:"required,min=1"`
	Position int  `json:"position" validate:"min=0"`
}

// ReorderChapters rewrites the positions of the given chapters of one course.
// Every update must target a chapter of that course; a single foreign id fails
// the whole call with ErrForbidden and nothing is persisted. Positions are not
// checked for gaps or collisions, sibling order is resolved by comparison at
// read time.
func ReorderChapters(db *gorm.DB, actorID, courseID uint, updates []PositionUpdate) error {
	if _, err := AuthorizeCourse(db, actorID, courseID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&courseModels.Chapter{}).
				Where("id = ? AND course_id = ? AND is_deleted = false", u.ID, courseID).
				Update("position", u.Position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrForbidden
			}
		}
		return nil
	})
}

// ReorderLessons rewrites the positions of the given lessons of one chapter,
// with the same all-or-nothing semantics as ReorderChapters.
func ReorderLessons(db *gorm.DB, actorID, chapterID uint, updates []PositionUpdate) error {
	if _, _, err := AuthorizeChapter(db, actorID, chapterID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&courseModels.Lesson{}).
				Where("id = ? AND chapter_id = ? AND is_deleted = false", u.ID, chapterID).
				Update("position", u.Position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrForbidden
			}
		}
		return nil
	})
}

// NextChapterPosition returns the append position for a new chapter.
func NextChapterPosition(db *gorm.DB, courseID uint) int {
	var maxPos int
	db.Model(&courseModels.Chapter{}).
		Where("course_id = ? AND is_deleted = false", courseID).
		Select("COALESCE(MAX(position), 0)").Scan(&maxPos)
	return maxPos + 1
}

// NextLessonPosition returns the append position for a new lesson.
func NextLessonPosition(db *gorm.DB, chapterID uint) int {
	var maxPos int
	db.Model(&courseModels.Lesson{}).
		Where("chapter_id = ? AND is_deleted = false", chapterID).
		Select("COALESCE(MAX(position), 0)").Scan(&maxPos)
	return maxPos + 1
}
