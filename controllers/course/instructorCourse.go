package controllers

import (
	"eduflex/database"
	"eduflex/middleware"
	"eduflex/models"
	courseModels "eduflex/models/course"
	"eduflex/services/courseService"
	courseValidator "eduflex/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CreateCourse creates a new draft course owned by the instructor
func CreateCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		CreatedByID: user.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		CategoryID:  reqData.CategoryID,
		ImageURL:    reqData.ImageURL,
		IsPublished: false,
	}
	if reqData.Price != nil {
		course.Price = decimal.NewNullDecimal(decimal.NewFromFloat(*reqData.Price))
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course owned by the instructor
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := courseService.AuthorizeCourse(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.ImageURL != "" {
		course.ImageURL = reqData.ImageURL
	}
	if reqData.CategoryID != nil {
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Price != nil {
		course.Price = decimal.NewNullDecimal(decimal.NewFromFloat(*reqData.Price))
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft deletes a course owned by the instructor
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := courseService.AuthorizeCourse(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	// Soft delete the course together with its chapters and lessons.
	// Remaining sibling positions are not renumbered.
	tx := database.Database.Db.Begin()

	course.IsDeleted = true
	if err := tx.Save(course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if err := tx.Model(&courseModels.Chapter{}).Where("course_id = ?", course.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course chapters!", nil)
	}
	if err := tx.Model(&courseModels.Lesson{}).Where("course_id = ?", course.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetMyCourses lists the instructor's own courses
func GetMyCourses(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*courseValidator.PaginationRequest)

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var courses []courseModels.Course
	var total int64

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("created_by_id = ? AND is_deleted = ?", user.ID, false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMyCourseDetails gets one of the instructor's courses with its chapters
func GetMyCourseDetails(c *fiber.Ctx) error {
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
	database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("position asc").Find(&chapters)

	var category models.Category
	if course.CategoryID != nil {
		database.Database.Db.Where("id = ? AND is_deleted = ?", *course.CategoryID, false).First(&category)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"chapters":         chapters,
		"category":         category,
		"enrollment_count": enrollmentCount,
	})
}

// PublishCourse publishes or unpublishes a course through the publish gate
func PublishCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	publishStatus := c.Locals("publishStatus").(bool)

	course, err := courseService.SetCoursePublished(database.Database.Db, user.ID, uint(courseID), publishStatus)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	message := "Course unpublished successfully!"
	if publishStatus {
		message = "Course published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}
