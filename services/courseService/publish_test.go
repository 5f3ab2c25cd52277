package courseService

import (
	"eduflex/models"
	courseModels "eduflex/models/course"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterGateRequiresTitleAndDescription(t *testing.T) {
	verr := ChapterGate(&courseModels.Chapter{Title: "  ", Description: ""})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "description")

	assert.Nil(t, ChapterGate(&courseModels.Chapter{Title: "Intro", Description: "basics"}))
}

func TestLessonGateRequiresMedia(t *testing.T) {
	verr := LessonGate(&courseModels.Lesson{Title: "hello", Description: "about hello"})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "media_url")
	assert.NotContains(t, verr.Fields, "title")
}

func TestSetChapterPublishedRunsGate(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)

	bare := courseModels.Chapter{CourseID: course.ID, Title: "Intro", Position: 1}
	require.NoError(t, db.Create(&bare).Error)

	_, err := SetChapterPublished(db, instructor.ID, bare.ID, true)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "description")

	var reloaded courseModels.Chapter
	require.NoError(t, db.First(&reloaded, bare.ID).Error)
	assert.False(t, reloaded.IsPublished)
}

func TestCourseGateNeedsLessonWithMedia(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)

	// Every course field is filled in but no lesson carries media.
	noMedia := courseModels.Lesson{
		ChapterID: ch.ID, CourseID: course.ID,
		Title: "talk", Description: "talk only", Position: 1,
	}
	require.NoError(t, db.Create(&noMedia).Error)

	_, err := SetCoursePublished(db, instructor.ID, course.ID, true)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "lessons")
	assert.Len(t, verr.Fields, 1)

	createLesson(t, db, ch.ID, course.ID, "hello", 2)
	published, err := SetCoursePublished(db, instructor.ID, course.ID, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
}

func TestCourseGateReportsMissingFields(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)

	course := courseModels.Course{CreatedByID: instructor.ID, Title: "Untitled draft"}
	require.NoError(t, db.Create(&course).Error)

	_, err := SetCoursePublished(db, instructor.ID, course.ID, true)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "image_url")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "category_id")
	assert.Contains(t, verr.Fields, "lessons")
}

func TestUnpublishLastChapterDemotesCourse(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	s1 := createChapter(t, db, course.ID, "S1", 1)
	s2 := createChapter(t, db, course.ID, "S2", 2)
	createLesson(t, db, s1.ID, course.ID, "hello", 1)

	for _, ch := range []*courseModels.Chapter{s1, s2} {
		_, err := SetChapterPublished(db, instructor.ID, ch.ID, true)
		require.NoError(t, err)
	}
	_, err := SetCoursePublished(db, instructor.ID, course.ID, true)
	require.NoError(t, err)

	// One published sibling left: the course stays up.
	_, err = SetChapterPublished(db, instructor.ID, s1.ID, false)
	require.NoError(t, err)

	var reloaded courseModels.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.True(t, reloaded.IsPublished)

	// Last one down: the course comes down with it.
	_, err = SetChapterPublished(db, instructor.ID, s2.ID, false)
	require.NoError(t, err)

	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.False(t, reloaded.IsPublished)
}

func TestDemotedCourseNeedsExplicitRepublish(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)
	createLesson(t, db, ch.ID, course.ID, "hello", 1)

	_, err := SetChapterPublished(db, instructor.ID, ch.ID, true)
	require.NoError(t, err)
	_, err = SetCoursePublished(db, instructor.ID, course.ID, true)
	require.NoError(t, err)

	_, err = SetChapterPublished(db, instructor.ID, ch.ID, false)
	require.NoError(t, err)

	// Publishing the chapter again does not resurrect the course.
	_, err = SetChapterPublished(db, instructor.ID, ch.ID, true)
	require.NoError(t, err)

	var reloaded courseModels.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.False(t, reloaded.IsPublished)
}

func TestUnpublishSkipsGate(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)

	// A published course that has since lost its price must still unpublish.
	course := createCourse(t, db, instructor.ID)
	course.IsPublished = true
	course.Price = decimal.NullDecimal{}
	require.NoError(t, db.Save(course).Error)

	got, err := SetCoursePublished(db, instructor.ID, course.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
}

func TestSetLessonPublishedHasNoCascade(t *testing.T) {
	db := setupTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)
	lesson := createLesson(t, db, ch.ID, course.ID, "hello", 1)

	_, err := SetChapterPublished(db, instructor.ID, ch.ID, true)
	require.NoError(t, err)
	_, err = SetCoursePublished(db, instructor.ID, course.ID, true)
	require.NoError(t, err)

	_, err = SetLessonPublished(db, instructor.ID, lesson.ID, false)
	require.NoError(t, err)

	var reloadedCh courseModels.Chapter
	var reloadedCourse courseModels.Course
	require.NoError(t, db.First(&reloadedCh, ch.ID).Error)
	require.NoError(t, db.First(&reloadedCourse, course.ID).Error)
	assert.True(t, reloadedCh.IsPublished)
	assert.True(t, reloadedCourse.IsPublished)
}
