package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
)

// SetupCourseRoutes sets up the read-side course routes available to any
// authenticated user; no ownership checks apply here.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", middleware.JWTMiddleware, courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.GetCourseDetails)
	courseGroup.Get("/:id/chapters", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.ListChapters)
	courseGroup.Get("/:course_id/chapter/:chapter_id/resources",
		middleware.JWTMiddleware, courseValidator.ChapterResources(), courseController.GetChapterResources)
}

// SetupTeacherCourseRoutes sets up the mutating course routes. Every handler
// resolves the teacher -> course -> chapter ownership chain server-side.
func SetupTeacherCourseRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher/course",
		middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher))

	// Course CRUD
	teacherGroup.Post("/create", courseValidator.CreateCourse(), courseController.CreateCourse)
	teacherGroup.Get("/list", courseController.TeacherCourses)
	teacherGroup.Put("/:id", courseValidator.UpdateCourse(), courseController.UpdateCourse)
	teacherGroup.Delete("/:id", courseValidator.CourseID(), courseController.DeleteCourse)

	// Chapter management
	teacherGroup.Post("/:id/chapter", courseValidator.CreateChapter(), courseController.CreateChapter)
	teacherGroup.Put("/:course_id/chapter/:chapter_id", courseValidator.UpdateChapter(), courseController.UpdateChapter)
	teacherGroup.Delete("/:course_id/chapter/:chapter_id", courseValidator.ChapterID(), courseController.DeleteChapter)

	// Chapter content linking
	teacherGroup.Post("/:course_id/chapter/:chapter_id/resources",
		courseValidator.AttachResource(), courseController.AttachResource)
	teacherGroup.Delete("/:course_id/chapter/:chapter_id/resources/:resource_id",
		courseValidator.DetachResource(), courseController.DetachResource)
	teacherGroup.Patch("/:course_id/chapter/:chapter_id/resources/order",
		courseValidator.ReorderResources(), courseController.ReorderResources)
	teacherGroup.Patch("/:course_id/chapter/:chapter_id/resources/normalize",
		courseValidator.ChapterID(), courseController.NormalizeResources)
}
