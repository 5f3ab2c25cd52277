package controllers

import (
	"eduflex/database"
	"eduflex/middleware"
	courseModels "eduflex/models/course"
	"eduflex/services/courseService"
	"eduflex/utils"
	courseValidator "eduflex/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson creates a new lesson appended at the end of the chapter
func CreateLesson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID := c.Locals("chapterID").(int)

	chapter, course, err := courseService.AuthorizeChapter(database.Database.Db, user.ID, uint(chapterID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		ChapterID:   chapter.ID,
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		MediaURL:    reqData.MediaURL,
		Duration:    reqData.Duration,
		Position:    courseService.NextLessonPosition(database.Database.Db, chapter.ID),
	}
	if reqData.IsFree != nil {
		lesson.IsFree = *reqData.IsFree
	}

	// Resolve the duration from the media service when the instructor left it out
	if lesson.Duration == "" && lesson.MediaURL != "" {
		if duration, err := utils.FetchMediaDuration(lesson.MediaURL); err == nil {
			lesson.Duration = duration
		}
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson updates an existing lesson
func UpdateLesson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	lesson, _, err := courseService.AuthorizeLesson(database.Database.Db, user.ID, uint(lessonID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Description != "" {
		lesson.Description = reqData.Description
	}
	if reqData.MediaURL != "" {
		lesson.MediaURL = reqData.MediaURL
		if reqData.Duration == "" {
			if duration, err := utils.FetchMediaDuration(lesson.MediaURL); err == nil {
				lesson.Duration = duration
			}
		}
	}
	if reqData.Duration != "" {
		lesson.Duration = reqData.Duration
	}
	if reqData.IsFree != nil {
		lesson.IsFree = *reqData.IsFree
	}

	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson soft deletes a lesson. Sibling positions keep their gaps.
func DeleteLesson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	lesson, _, err := courseService.AuthorizeLesson(database.Database.Db, user.ID, uint(lessonID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	lesson.IsDeleted = true
	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// ListLessons lists all lessons of the instructor's chapter in stored order
func ListLessons(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID := c.Locals("chapterID").(int)

	chapter, _, err := courseService.AuthorizeChapter(database.Database.Db, user.ID, uint(chapterID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	var lessons []courseModels.Lesson
	if err := database.Database.Db.
		Where("chapter_id = ? AND is_deleted = ?", chapter.ID, false).
		Order("position asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// ReorderLessons rewrites lesson positions from the submitted order
func ReorderLessons(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID := c.Locals("chapterID").(int)

	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := courseService.ReorderLessons(database.Database.Db, user.ID, uint(chapterID), reqData.Items); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", nil)
}

// PublishLesson publishes or unpublishes a lesson
func PublishLesson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)
	publishStatus := c.Locals("publishStatus").(bool)

	lesson, err := courseService.SetLessonPublished(database.Database.Db, user.ID, uint(lessonID), publishStatus)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	message := "Lesson unpublished successfully!"
	if publishStatus {
		message = "Lesson published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, lesson)
}
