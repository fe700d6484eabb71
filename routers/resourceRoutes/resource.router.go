package resourceRoutes

import (
	"github.com/gofiber/fiber/v2"

	resourceController "lms/controllers/resource"
	"lms/middleware"
	"lms/models"
	resourceValidator "lms/validators/resource"
)

// SetupResourceRoutes sets up resource browsing and tag listing
func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/resource")

	resourceGroup.Get("/list", middleware.JWTMiddleware, resourceValidator.ListResources(), resourceController.ListResources)
	resourceGroup.Get("/:id", middleware.JWTMiddleware, resourceValidator.ResourceID(), resourceController.GetResource)

	tagGroup := app.Group("/tag")
	tagGroup.Get("/list", middleware.JWTMiddleware, resourceController.ListTags)
}

// SetupTeacherResourceRoutes sets up resource authoring for teachers
func SetupTeacherResourceRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher/resource",
		middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher))

	teacherGroup.Post("/create", resourceValidator.CreateResource(), resourceController.CreateResource)
	teacherGroup.Get("/list", resourceController.TeacherResources)
	teacherGroup.Put("/:id", resourceValidator.UpdateResource(), resourceController.UpdateResource)
	teacherGroup.Delete("/:id", resourceValidator.ResourceID(), resourceController.DeleteResource)
}
