package courseValidator

import (
	"eduflex/middleware"
	"eduflex/services/courseService"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ============ Request payloads ============

type CourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *uint    `json:"category_id"`
	ImageURL    string   `json:"image_url"`
}

type ChapterRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type LessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	Duration    string `json:"duration"`
	IsFree      *bool  `json:"is_free"`
}

type ReorderRequest struct {
	Items []courseService.PositionUpdate `json:"items" validate:"required,min=1,dive"`
}

type PublishRequest struct {
	IsPublished bool `json:"is_published"`
}

// parseIDParam reads a positive integer route parameter into locals under key.
func parseIDParam(c *fiber.Ctx, param, key, label string) (int, error) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}
	c.Locals(key, id)
	return id, nil
}

// ============ Course Validators ============

// CreateCourse validates instructor course creation
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates instructor course updates
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}

		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates routes that only carry a course id
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// PublishCourse validates course publish/unpublish requests
func PublishCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}

		reqData := new(PublishRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("publishStatus", reqData.IsPublished)
		return c.Next()
	}
}

// ReorderChapters validates the chapter reorder payload
func ReorderChapters() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}

		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"items": "Items must be a non-empty list of {id, position} pairs!",
			})
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// ============ Chapter Validators ============

// CreateChapter validates chapter creation under a course
func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}

		reqData := new(ChapterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Chapter title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Chapter title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// UpdateChapter validates chapter updates
func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "chapter_id", "chapterID", "Chapter ID"); err != nil {
			return err
		}

		reqData := new(ChapterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Chapter title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapterUpdate", reqData)
		return c.Next()
	}
}

// ChapterID validates routes that only carry a chapter id
func ChapterID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "chapter_id", "chapterID", "Chapter ID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// PublishChapter validates chapter publish/unpublish requests
func PublishChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "chapter_id", "chapterID", "Chapter ID"); err != nil {
			return err
		}

		reqData := new(PublishRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("publishStatus", reqData.IsPublished)
		return c.Next()
	}
}

// ReorderLessons validates the lesson reorder payload
func ReorderLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "chapter_id", "chapterID", "Chapter ID"); err != nil {
			return err
		}

		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"items": "Items must be a non-empty list of {id, position} pairs!",
			})
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// ============ Lesson Validators ============

// CreateLesson validates lesson creation under a chapter
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "chapter_id", "chapterID", "Chapter ID"); err != nil {
			return err
		}

		reqData := new(LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Lesson title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Lesson title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates lesson updates
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "lesson_id", "lessonID", "Lesson ID"); err != nil {
			return err
		}

		reqData := new(LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Lesson title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonID validates routes that only carry a lesson id
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "lesson_id", "lessonID", "Lesson ID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// PublishLesson validates lesson publish/unpublish requests
func PublishLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "lesson_id", "lessonID", "Lesson ID"); err != nil {
			return err
		}

		reqData := new(PublishRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("publishStatus", reqData.IsPublished)
		return c.Next()
	}
}
