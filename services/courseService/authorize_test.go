package courseService

import (
	"eduflex/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorizeCourseRejectsNonInstructorBeforeLookup(t *testing.T) {
	db := setupTestDB(t)
	student := createUser(t, db, models.RoleStudent)

	// The course id does not exist; a student must still see the same
	// forbidden error as for a real course.
	_, err := AuthorizeCourse(db, student.ID, 424242)
	require.ErrorIs(t, err, ErrForbidden)

	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID)
	_, err = AuthorizeCourse(db, student.ID, course.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeCourseMissAndForeignAreIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, models.RoleInstructor)
	stranger := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, owner.ID)

	_, missErr := AuthorizeCourse(db, stranger.ID, 424242)
	_, foreignErr := AuthorizeCourse(db, stranger.ID, course.ID)

	require.ErrorIs(t, missErr, ErrForbidden)
	require.ErrorIs(t, foreignErr, ErrForbidden)
	require.Equal(t, missErr, foreignErr)
}

func TestAuthorizeCourseAcceptsCreator(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, owner.ID)

	got, err := AuthorizeCourse(db, owner.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, course.ID, got.ID)
}

func TestAuthorizeLessonWalksOwnershipChain(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, models.RoleInstructor)
	stranger := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, owner.ID)
	ch := createChapter(t, db, course.ID, "Intro", 1)
	lesson := createLesson(t, db, ch.ID, course.ID, "hello", 1)

	gotLesson, gotCourse, err := AuthorizeLesson(db, owner.ID, lesson.ID)
	require.NoError(t, err)
	require.Equal(t, lesson.ID, gotLesson.ID)
	require.Equal(t, course.ID, gotCourse.ID)

	_, _, err = AuthorizeLesson(db, stranger.ID, lesson.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeIgnoresSoftDeletedEntities(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, owner.ID)

	require.NoError(t, db.Model(course).Update("is_deleted", true).Error)

	_, err := AuthorizeCourse(db, owner.ID, course.ID)
	require.ErrorIs(t, err, ErrForbidden)
}
