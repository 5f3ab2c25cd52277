package courseRoutes

import (
	controllers "eduflex/controllers/course"
	"eduflex/middleware"
	"eduflex/models"
	validators "eduflex/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up all instructor authoring routes
func SetupInstructorRoutes(app *fiber.App) {
	instructor := middleware.RequireRole(models.RoleInstructor)

	courseGroup := app.Group("/instructor/course")

	// Course CRUD
	courseGroup.Post("/create", middleware.JWTMiddleware, instructor, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/list", middleware.JWTMiddleware, instructor, validators.CourseList(), controllers.GetMyCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, instructor, validators.CourseID(), controllers.GetMyCourseDetails)
	courseGroup.Put("/:id", middleware.JWTMiddleware, instructor, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, instructor, validators.CourseID(), controllers.DeleteCourse)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, instructor, validators.PublishCourse(), controllers.PublishCourse)

	// Chapter management
	courseGroup.Post("/:id/chapter", middleware.JWTMiddleware, instructor, validators.CreateChapter(), controllers.CreateChapter)
	courseGroup.Get("/:id/chapters", middleware.JWTMiddleware, instructor, validators.CourseID(), controllers.ListChapters)
	courseGroup.Put("/:id/reorder", middleware.JWTMiddleware, instructor, validators.ReorderChapters(), controllers.ReorderChapters)

	chapterGroup := app.Group("/instructor/chapter")
	chapterGroup.Put("/:chapter_id", middleware.JWTMiddleware, instructor, validators.UpdateChapter(), controllers.UpdateChapter)
	chapterGroup.Delete("/:chapter_id", middleware.JWTMiddleware, instructor, validators.ChapterID(), controllers.DeleteChapter)
	chapterGroup.Post("/:chapter_id/publish", middleware.JWTMiddleware, instructor, validators.PublishChapter(), controllers.PublishChapter)
	chapterGroup.Put("/:chapter_id/reorder", middleware.JWTMiddleware, instructor, validators.ReorderLessons(), controllers.ReorderLessons)

	// Lesson management
	chapterGroup.Post("/:chapter_id/lesson", middleware.JWTMiddleware, instructor, validators.CreateLesson(), controllers.CreateLesson)
	chapterGroup.Get("/:chapter_id/lessons", middleware.JWTMiddleware, instructor, validators.ChapterID(), controllers.ListLessons)

	lessonGroup := app.Group("/instructor/lesson")
	lessonGroup.Put("/:lesson_id", middleware.JWTMiddleware, instructor, validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:lesson_id", middleware.JWTMiddleware, instructor, validators.LessonID(), controllers.DeleteLesson)
	lessonGroup.Post("/:lesson_id/publish", middleware.JWTMiddleware, instructor, validators.PublishLesson(), controllers.PublishLesson)
}
