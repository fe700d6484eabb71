package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseService "lms/services/course"
	courseValidator "lms/validators/course"
)

// AttachResource links a resource into a chapter of an owned course
func AttachResource(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)
	reqData, ok := c.Locals("validatedAttach").(*courseValidator.AttachResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	_, chapter, err := courseService.ResolveOwnedChapter(db, uint(courseID), uint(chapterID), teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "AttachResource", err)
	}

	link, err := courseService.AttachResource(db, chapter.ID, reqData.ResourceID, reqData.Order)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "AttachResource", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource linked to chapter successfully!", link)
}

// DetachResource unlinks a resource from a chapter of an owned course
func DetachResource(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)
	resourceID := c.Locals("resourceID").(string)

	db := database.Database.Db
	_, chapter, err := courseService.ResolveOwnedChapter(db, uint(courseID), uint(chapterID), teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "DetachResource", err)
	}

	if err := courseService.DetachResource(db, chapter.ID, resourceID); err != nil {
		return middleware.ServiceErrorResponse(c, "DetachResource", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource unlinked from chapter successfully!", nil)
}

// ReorderResources applies a batch of order updates to a chapter's links.
// Ownership is resolved once for the whole batch; items are applied one by one.
func ReorderResources(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)
	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	_, chapter, err := courseService.ResolveOwnedChapter(db, uint(courseID), uint(chapterID), teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "ReorderResources", err)
	}

	links, err := courseService.ApplyOrderUpdates(db, chapter.ID, reqData.OrderUpdates)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "ReorderResources", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter order updated successfully!", fiber.Map{
		"links": links,
	})
}

// NormalizeResources rewrites a chapter's link order to a contiguous 1..N
func NormalizeResources(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	db := database.Database.Db
	_, chapter, err := courseService.ResolveOwnedChapter(db, uint(courseID), uint(chapterID), teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "NormalizeResources", err)
	}

	links, err := courseService.NormalizeChapterOrder(db, chapter.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "NormalizeResources", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter order normalized successfully!", fiber.Map{
		"links": links,
	})
}

// GetChapterResources returns a chapter's resources in link order. No ownership
// check: students and teachers alike may read chapter content.
func GetChapterResources(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	resources, err := courseService.ListChapterResources(database.Database.Db, uint(chapterID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, "GetChapterResources", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}
