package controllers

import (
	"eduflex/middleware"
	"eduflex/models"
	"eduflex/services/courseService"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// currentUser returns the user loaded by the role middleware.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

// serviceErrorResponse maps course service errors onto the JSON envelope.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var verr *courseService.ValidationError
	switch {
	case errors.Is(err, courseService.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	case errors.Is(err, courseService.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.As(err, &verr):
		return middleware.ValidationErrorResponse(c, verr.Fields)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
