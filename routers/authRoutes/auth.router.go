package authRoutes

import (
	authController "eduflex/controllers/auth"
	"eduflex/middleware"
	authValidator "eduflex/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and role onboarding routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)

	userGroup := app.Group("/user")
	userGroup.Post("/role", middleware.JWTMiddleware, authValidator.SelectRole(), authController.SelectRole)
}
