package controllers

import (
	"eduflex/database"
	"eduflex/middleware"
	courseModels "eduflex/models/course"
	"eduflex/services/courseService"
	courseValidator "eduflex/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateChapter creates a new chapter appended at the end of the course
func CreateChapter(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := courseService.AuthorizeCourse(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedChapter").(*courseValidator.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter := courseModels.Chapter{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Position:    courseService.NextChapterPosition(database.Database.Db, course.ID),
	}

	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// UpdateChapter updates an existing chapter
func UpdateChapter(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID := c.Locals("chapterID").(int)

	chapter, _, err := courseService.AuthorizeChapter(database.Database.Db, user.ID, uint(chapterID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedChapterUpdate").(*courseValidator.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
	}
	if reqData.Description != "" {
		chapter.Description = reqData.Description
	}

	if err := database.Database.Db.Save(chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// DeleteChapter soft deletes a chapter and its lessons. Sibling positions
// keep their gaps.
func DeleteChapter(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID := c.Locals("chapterID").(int)

	chapter, _, err := courseService.AuthorizeChapter(database.Database.Db, user.ID, uint(chapterID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	tx := database.Database.Db.Begin()

	chapter.IsDeleted = true
	if err := tx.Save(chapter).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}
	if err := tx.Model(&courseModels.Lesson{}).Where("chapter_id = ?", chapter.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// ListChapters lists all chapters of the instructor's course in stored order
func ListChapters(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := courseService.AuthorizeCourse(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	var chapters []courseModels.Chapter
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("position asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	// Attach lesson counts for the authoring view
	type ChapterWithCount struct {
		courseModels.Chapter
		LessonCount int64 `json:"lesson_count"`
	}

	result := make([]ChapterWithCount, len(chapters))
	for i, ch := range chapters {
		var count int64
		database.Database.Db.Model(&courseModels.Lesson{}).
			Where("chapter_id = ? AND is_deleted = ?", ch.ID, false).Count(&count)
		result[i] = ChapterWithCount{Chapter: ch, LessonCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", fiber.Map{
		"chapters": result,
	})
}

// ReorderChapters rewrites chapter positions from the submitted order
func ReorderChapters(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := courseService.ReorderChapters(database.Database.Db, user.ID, uint(courseID), reqData.Items); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters reordered successfully!", nil)
}

// PublishChapter publishes or unpublishes a chapter. Unpublishing the last
// published chapter demotes the course as well.
func PublishChapter(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID := c.Locals("chapterID").(int)
	publishStatus := c.Locals("publishStatus").(bool)

	chapter, err := courseService.SetChapterPublished(database.Database.Db, user.ID, uint(chapterID), publishStatus)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	message := "Chapter unpublished successfully!"
	if publishStatus {
		message = "Chapter published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, chapter)
}
