package courseService

import (
	courseModels "eduflex/models/course"
	"strings"

	"gorm.io/gorm"
)

// Publish gates. An entity may only flip to published when its required
// fields are filled in; unpublishing never runs a gate.

// ChapterGate returns nil when the chapter may be published.
func ChapterGate(ch *courseModels.Chapter) *ValidationError {
	verr := newValidationError()
	if strings.TrimSpace(ch.Title) == "" {
		verr.Fields["title"] = "Chapter title is required to publish!"
	}
	if strings.TrimSpace(ch.Description) == "" {
		verr.Fields["description"] = "Chapter description is required to publish!"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// LessonGate returns nil when the lesson may be published.
func LessonGate(l *courseModels.Lesson) *ValidationError {
	verr := newValidationError()
	if strings.TrimSpace(l.Title) == "" {
		verr.Fields["title"] = "Lesson title is required to publish!"
	}
	if strings.TrimSpace(l.Description) == "" {
		verr.Fields["description"] = "Lesson description is required to publish!"
	}
	if strings.TrimSpace(l.MediaURL) == "" {
		verr.Fields["media_url"] = "Lesson media is required to publish!"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// CourseGate returns nil when the course may be published. On top of its own
// required fields the course needs at least one lesson carrying media,
// anywhere across its chapters.
func CourseGate(db *gorm.DB, course *courseModels.Course) *ValidationError {
	verr := newValidationError()
	if strings.TrimSpace(course.Title) == "" {
		verr.Fields["title"] = "Course title is required to publish!"
	}
	if strings.TrimSpace(course.Description) == "" {
		verr.Fields["description"] = "Course description is required to publish!"
	}
	if strings.TrimSpace(course.ImageURL) == "" {
		verr.Fields["image_url"] = "Course image is required to publish!"
	}
	if !course.Price.Valid {
		verr.Fields["price"] = "Course price is required to publish!"
	}
	if course.CategoryID == nil {
		verr.Fields["category_id"] = "Course category is required to publish!"
	}

	var mediaLessons int64
	db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = false AND media_url <> ''", course.ID).
		Count(&mediaLessons)
	if mediaLessons == 0 {
		verr.Fields["lessons"] = "At least one lesson with media is required to publish!"
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// SetCoursePublished flips the course's published flag. Publishing requires
// the course gate; unpublishing is a plain flip.
func SetCoursePublished(db *gorm.DB, actorID, courseID uint, desired bool) (*courseModels.Course, error) {
	course, err := AuthorizeCourse(db, actorID, courseID)
	if err != nil {
		return nil, err
	}

	if desired {
		if verr := CourseGate(db, course); verr != nil {
			return nil, verr
		}
	}

	course.IsPublished = desired
	if err := db.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// SetChapterPublished flips the chapter's published flag. Publishing requires
// the chapter gate. Unpublishing always succeeds for the chapter itself and
// then, inside the same transaction, demotes the course when no published
// sibling remains — the demotion is unconditional, the course gate is not
// re-run on the way down.
func SetChapterPublished(db *gorm.DB, actorID, chapterID uint, desired bool) (*courseModels.Chapter, error) {
	chapter, course, err := AuthorizeChapter(db, actorID, chapterID)
	if err != nil {
		return nil, err
	}

	if desired {
		if verr := ChapterGate(chapter); verr != nil {
			return nil, verr
		}
		chapter.IsPublished = true
		if err := db.Save(chapter).Error; err != nil {
			return nil, err
		}
		return chapter, nil
	}

	// Unpublish and cascade-check in one transaction, so a publish racing
	// between the sibling count and the course update cannot be lost.
	err = db.Transaction(func(tx *gorm.DB) error {
		chapter.IsPublished = false
		if err := tx.Save(chapter).Error; err != nil {
			return err
		}

		var publishedSiblings int64
		if err := tx.Model(&courseModels.Chapter{}).
			Where("course_id = ? AND is_deleted = false AND is_published = true", course.ID).
			Count(&publishedSiblings).Error; err != nil {
			return err
		}

		if publishedSiblings == 0 {
			if err := tx.Model(&courseModels.Course{}).
				Where("id = ?", course.ID).
				Update("is_published", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chapter, nil
}

// SetLessonPublished flips the lesson's published flag. Publishing requires
// the lesson gate; unpublishing is a plain flip with no cascade.
func SetLessonPublished(db *gorm.DB, actorID, lessonID uint, desired bool) (*courseModels.Lesson, error) {
	lesson, _, err := AuthorizeLesson(db, actorID, lessonID)
	if err != nil {
		return nil, err
	}

	if desired {
		if verr := LessonGate(lesson); verr != nil {
			return nil, verr
		}
	}

	lesson.IsPublished = desired
	if err := db.Save(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}
