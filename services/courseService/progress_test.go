package courseService

import (
	"eduflex/models"
	courseModels "eduflex/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLessonCompleteUpserts(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)
	lesson := createLesson(t, db, ch.ID, course.ID, "hello", 1)

	first, err := ToggleLessonComplete(db, student.ID, lesson.ID, true)
	require.NoError(t, err)
	assert.True(t, first.IsCompleted)

	second, err := ToggleLessonComplete(db, student.ID, lesson.ID, true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var rows int64
	require.NoError(t, db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	// Untoggling flips the same row rather than deleting it.
	third, err := ToggleLessonComplete(db, student.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.False(t, third.IsCompleted)
}

func TestToggleLessonCompleteRejectsUnpublishedLesson(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)

	draft := courseModels.Lesson{
		ChapterID: ch.ID, CourseID: course.ID,
		Title: "draft", Description: "unfinished", Position: 1,
	}
	require.NoError(t, db.Create(&draft).Error)

	_, err := ToggleLessonComplete(db, student.ID, draft.ID, true)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = ToggleLessonComplete(db, student.ID, 424242, true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCourseProgressCountsPublishedLessonsOnly(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)

	lA := createLesson(t, db, ch.ID, course.ID, "hello", 1)
	createLesson(t, db, ch.ID, course.ID, "world", 2)

	draft := courseModels.Lesson{
		ChapterID: ch.ID, CourseID: course.ID,
		Title: "draft", Description: "unfinished", Position: 3,
	}
	require.NoError(t, db.Create(&draft).Error)

	percent, completed, total, err := CourseProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.EqualValues(t, 0, completed)
	assert.Zero(t, percent)

	_, err = ToggleLessonComplete(db, student.ID, lA.ID, true)
	require.NoError(t, err)

	percent, completed, total, err = CourseProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.EqualValues(t, 1, completed)
	assert.InDelta(t, 50.0, percent, 0.001)
}

func TestCourseProgressEmptyCourseIsZero(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor.ID)

	percent, completed, total, err := CourseProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, completed)
	assert.Zero(t, percent)
}
