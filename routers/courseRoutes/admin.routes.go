package courseRoutes

import (
	controllers "eduflex/controllers/course"
	"eduflex/middleware"
	"eduflex/models"
	validators "eduflex/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin moderation routes
func SetupAdminRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	courseGroup := app.Group("/admin/course")
	courseGroup.Get("/list", middleware.JWTMiddleware, admin, validators.CourseList(), controllers.AdminGetAllCourses)
	courseGroup.Post("/:id/unpublish", middleware.JWTMiddleware, admin, validators.CourseID(), controllers.AdminUnpublishCourse)

	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, admin, controllers.AdminDashboardStats)

	certGroup := app.Group("/admin/certificates")
	certGroup.Get("/pending", middleware.JWTMiddleware, admin, controllers.AdminGetPendingCertificates)

	certRequestGroup := app.Group("/admin/certificate")
	certRequestGroup.Post("/:request_id/approve", middleware.JWTMiddleware, admin, validators.CertificateDecision(), controllers.AdminApproveCertificate)
	certRequestGroup.Post("/:request_id/reject", middleware.JWTMiddleware, admin, validators.CertificateDecision(), controllers.AdminRejectCertificate)
}
