package courseService

import (
	"eduflex/models"
	courseModels "eduflex/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderChaptersRewritesSiblingOrder(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	chA := createChapter(t, db, course.ID, "Intro", 1)
	chB := createChapter(t, db, course.ID, "Setup", 2)

	err := ReorderChapters(db, instructor.ID, course.ID, []PositionUpdate{
		{ID: chA.ID, Position: 2},
		{ID: chB.ID, Position: 1},
	})
	require.NoError(t, err)

	var ordered []courseModels.Chapter
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("position ASC").Find(&ordered).Error)
	require.Len(t, ordered, 2)
	assert.Equal(t, chB.ID, ordered[0].ID)
	assert.Equal(t, chA.ID, ordered[1].ID)
}

func TestReorderChaptersForeignItemAbortsWhole(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	other := createCourse(t, db, instructor.ID)
	chA := createChapter(t, db, course.ID, "Intro", 1)
	foreign := createChapter(t, db, other.ID, "Elsewhere", 1)

	err := ReorderChapters(db, instructor.ID, course.ID, []PositionUpdate{
		{ID: chA.ID, Position: 5},
		{ID: foreign.ID, Position: 1},
	})
	require.ErrorIs(t, err, ErrForbidden)

	// The valid update in the same payload must not have stuck either.
	var reloaded courseModels.Chapter
	require.NoError(t, db.First(&reloaded, chA.ID).Error)
	assert.Equal(t, 1, reloaded.Position)
}

func TestReorderChaptersRequiresCourseCreator(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, models.RoleInstructor)
	stranger := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, owner.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)

	err := ReorderChapters(db, stranger.ID, course.ID, []PositionUpdate{{ID: ch.ID, Position: 3}})
	require.ErrorIs(t, err, ErrForbidden)

	var reloaded courseModels.Chapter
	require.NoError(t, db.First(&reloaded, ch.ID).Error)
	assert.Equal(t, 1, reloaded.Position)
}

func TestReorderLessonsRewritesSiblingOrder(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)
	lA := createLesson(t, db, ch.ID, course.ID, "hello", 1)
	lB := createLesson(t, db, ch.ID, course.ID, "world", 2)

	err := ReorderLessons(db, instructor.ID, ch.ID, []PositionUpdate{
		{ID: lA.ID, Position: 2},
		{ID: lB.ID, Position: 1},
	})
	require.NoError(t, err)

	var ordered []courseModels.Lesson
	require.NoError(t, db.Where("chapter_id = ?", ch.ID).Order("position ASC").Find(&ordered).Error)
	require.Len(t, ordered, 2)
	assert.Equal(t, lB.ID, ordered[0].ID)
	assert.Equal(t, lA.ID, ordered[1].ID)
}

func TestReorderLessonsRejectsLessonFromOtherChapter(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)
	otherCh := createChapter(t, db, course.ID, "Setup", 2)
	foreign := createLesson(t, db, otherCh.ID, course.ID, "stray", 1)

	err := ReorderLessons(db, instructor.ID, ch.ID, []PositionUpdate{{ID: foreign.ID, Position: 1}})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestReorderAllowsGapsAndCollisions(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	chA := createChapter(t, db, course.ID, "Intro", 1)
	chB := createChapter(t, db, course.ID, "Setup", 2)

	err := ReorderChapters(db, instructor.ID, course.ID, []PositionUpdate{
		{ID: chA.ID, Position: 10},
		{ID: chB.ID, Position: 10},
	})
	require.NoError(t, err)
}

func TestNextChapterPositionAppends(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)

	assert.Equal(t, 1, NextChapterPosition(db, course.ID))
	createChapter(t, db, course.ID, "Intro", 7)
	assert.Equal(t, 8, NextChapterPosition(db, course.ID))
}
