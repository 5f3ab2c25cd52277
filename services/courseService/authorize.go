package courseService

import (
	"eduflex/models"
	courseModels "eduflex/models/course"

	"gorm.io/gorm"
)

// The ownership guard fails closed: the actor's role is checked before any
// entity lookup, and every failure after that point collapses into
// ErrForbidden so responses never reveal whether the target exists.

// requireInstructor loads the acting user and checks the INSTRUCTOR role.
func requireInstructor(db *gorm.DB, actorID uint) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", actorID).First(&user).Error; err != nil {
		return nil, ErrForbidden
	}
	if user.Role != models.RoleInstructor {
		return nil, ErrForbidden
	}
	return &user, nil
}

// AuthorizeCourse confirms the actor is an instructor and the creator of the course.
func AuthorizeCourse(db *gorm.DB, actorID, courseID uint) (*courseModels.Course, error) {
	if _, err := requireInstructor(db, actorID); err != nil {
		return nil, err
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return nil, ErrForbidden
	}
	if course.CreatedByID != actorID {
		return nil, ErrForbidden
	}
	return &course, nil
}

// AuthorizeChapter resolves a chapter's owning course and authorizes the actor
// against it. The chain is walked with explicit lookups, one level at a time.
func AuthorizeChapter(db *gorm.DB, actorID, chapterID uint) (*courseModels.Chapter, *courseModels.Course, error) {
	if _, err := requireInstructor(db, actorID); err != nil {
		return nil, nil, err
	}

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND is_deleted = false", chapterID).First(&chapter).Error; err != nil {
		return nil, nil, ErrForbidden
	}

	course, err := AuthorizeCourse(db, actorID, chapter.CourseID)
	if err != nil {
		return nil, nil, err
	}
	return &chapter, course, nil
}

// AuthorizeLesson walks lesson -> chapter -> course and authorizes the actor.
func AuthorizeLesson(db *gorm.DB, actorID, lessonID uint) (*courseModels.Lesson, *courseModels.Course, error) {
	if _, err := requireInstructor(db, actorID); err != nil {
		return nil, nil, err
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return nil, nil, ErrForbidden
	}

	_, course, err := AuthorizeChapter(db, actorID, lesson.ChapterID)
	if err != nil {
		return nil, nil, err
	}
	return &lesson, course, nil
}
