package courseRoutes

import (
	controllers "eduflex/controllers/course"
	"eduflex/middleware"
	validators "eduflex/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Browsing published courses
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.BrowseCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/chapter/:chapter_id/lessons", middleware.JWTMiddleware, validators.ChapterLessons(), controllers.GetChapterLessons)

	// Progress tracking
	courseGroup.Put("/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.LessonComplete(), controllers.MarkLessonComplete)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseProgress)

	// Certificates
	courseGroup.Post("/:id/certificate/request", middleware.JWTMiddleware, validators.RequestCertificate(), controllers.RequestCertificate)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetMyCertificates)
}
