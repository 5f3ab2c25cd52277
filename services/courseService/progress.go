package courseService

import (
	courseModels "eduflex/models/course"

	"gorm.io/gorm"
)

// ToggleLessonComplete upserts the progress record for (user, lesson).
// Exactly one row exists per pair; repeated calls update it in place.
func ToggleLessonComplete(db *gorm.DB, userID, lessonID uint, completed bool) (*courseModels.LessonProgress, error) {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = false AND is_published = true", lessonID).First(&lesson).Error; err != nil {
		return nil, ErrNotFound
	}

	var progress courseModels.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err == nil {
		progress.IsCompleted = completed
		if err := db.Save(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	progress = courseModels.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		IsCompleted: completed,
	}
	if err := db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// CourseProgress returns the user's completion percentage over the course's
// published lessons, plus the raw counts.
func CourseProgress(db *gorm.DB, userID, courseID uint) (percent float64, completed, total int64, err error) {
	if err = db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = false AND is_published = true", courseID).
		Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}
	if total == 0 {
		return 0, 0, 0, nil
	}

	if err = db.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.is_completed = true", userID).
		Where("lessons.course_id = ? AND lessons.is_deleted = false AND lessons.is_published = true", courseID).
		Count(&completed).Error; err != nil {
		return 0, 0, 0, err
	}

	percent = float64(completed) / float64(total) * 100
	return percent, completed, total, nil
}
