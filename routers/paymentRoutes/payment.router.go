package paymentRoutes

import (
	paymentController "eduflex/controllers/payment"
	"eduflex/middleware"
	"eduflex/models"
	paymentValidator "eduflex/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout and webhook routes
func SetupPaymentRoutes(app *fiber.App) {
	student := middleware.RequireRole(models.RoleStudent)

	courseGroup := app.Group("/course")
	courseGroup.Post("/:id/checkout", middleware.JWTMiddleware, student, paymentValidator.Checkout(), paymentController.Checkout)

	userGroup := app.Group("/user")
	userGroup.Get("/purchases", middleware.JWTMiddleware, paymentController.GetMyPurchases)

	// Gateway callback, authenticated by its signature rather than a JWT
	paymentGroup := app.Group("/payment")
	paymentGroup.Post("/webhook", paymentController.GatewayWebhook)
}
