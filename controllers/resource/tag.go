package resourceController

import (
	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	resourceService "lms/services/resource"
)

// ListTags returns all tags ordered by name
func ListTags(c *fiber.Ctx) error {
	tags, err := resourceService.ListTags(database.Database.Db)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "ListTags", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tags fetched successfully!", fiber.Map{
		"tags": tags,
	})
}
