package courseService

import (
	"eduflex/models"
	courseModels "eduflex/models/course"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&courseModels.Course{},
		&courseModels.Chapter{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.LessonProgress{},
	))

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// fixtureSeq makes fixture values unique within a test, not just across tests.
var fixtureSeq atomic.Uint64

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%s-%d@example.com", role, t.Name(), fixtureSeq.Add(1)),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCourse(t *testing.T, db *gorm.DB, ownerID uint) *courseModels.Course {
	t.Helper()

	categoryID := createCategory(t, db)
	course := courseModels.Course{
		CreatedByID: ownerID,
		Title:       "Go from scratch",
		Description: "A complete introduction",
		Price:       decimal.NewNullDecimal(decimal.NewFromInt(150000)),
		CategoryID:  &categoryID,
		ImageURL:    "https://cdn.example.com/cover.png",
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createCategory(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	category := models.Category{Name: fmt.Sprintf("Programming %s %d", t.Name(), fixtureSeq.Add(1))}
	require.NoError(t, db.Create(&category).Error)
	return category.ID
}

func createChapter(t *testing.T, db *gorm.DB, courseID uint, title string, position int) *courseModels.Chapter {
	t.Helper()

	chapter := courseModels.Chapter{
		CourseID:    courseID,
		Title:       title,
		Description: "covers " + title,
		Position:    position,
	}
	require.NoError(t, db.Create(&chapter).Error)
	return &chapter
}

func createLesson(t *testing.T, db *gorm.DB, chapterID, courseID uint, title string, position int) *courseModels.Lesson {
	t.Helper()

	lesson := courseModels.Lesson{
		ChapterID:   chapterID,
		CourseID:    courseID,
		Title:       title,
		Description: "about " + title,
		MediaURL:    "https://media.example.com/" + title + ".mp4",
		Position:    position,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return &lesson
}
