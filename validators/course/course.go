package courseValidator

import (
	"eduflex/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type PaginationRequest struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

type ProgressRequest struct {
	IsCompleted bool `json:"is_completed"`
}

// CourseList validates the public course listing request
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaginationRequest)

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page number!", nil)
			}
			reqData.Page = &page
		}
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 || limit > 100 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid limit!", nil)
			}
			reqData.Limit = &limit
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// GetCourseDetail validates the course detail request
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// ChapterLessons validates the chapter lesson listing request
func ChapterLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}
		if _, err := parseIDParam(c, "chapter_id", "chapterID", "Chapter ID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// LessonComplete validates the progress toggle request
func LessonComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "lesson_id", "lessonID", "Lesson ID"); err != nil {
			return err
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// RequestCertificate validates the certificate request
func RequestCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "id", "courseID", "Course ID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// CertificateDecision validates admin approve/reject requests
func CertificateDecision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := parseIDParam(c, "request_id", "requestID", "Request ID"); err != nil {
			return err
		}

		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err == nil {
			c.Locals("decisionReason", strings.TrimSpace(reqData.Reason))
		}
		return c.Next()
	}
}
