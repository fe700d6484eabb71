package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	courseService "lms/services/course"
)

type AttachResourceRequest struct {
	ResourceID string `json:"resource_id"`
	Order      int    `json:"order"` // optional; 0 appends at the end
}

// AttachResource validates linking a resource into a chapter
func AttachResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		reqData := new(AttachResourceRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ResourceID = strings.TrimSpace(reqData.ResourceID)

		if reqData.ResourceID == "" {
			errors["resource_id"] = "Resource ID is required!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttach", reqData)
		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// DetachResource validates unlinking a resource from a chapter
func DetachResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}
		resourceID := strings.TrimSpace(c.Params("resource_id"))
		if resourceID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

type ReorderRequest struct {
	OrderUpdates []courseService.OrderUpdate `json:"order_updates"`
}

// ReorderResources validates a batch of {link_id, order} updates
func ReorderResources() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.OrderUpdates) == 0 {
			errors["order_updates"] = "At least one order update is required!"
		}
		for i := range reqData.OrderUpdates {
			reqData.OrderUpdates[i].LinkID = strings.TrimSpace(reqData.OrderUpdates[i].LinkID)
			if reqData.OrderUpdates[i].LinkID == "" {
				errors["order_updates"] = "Every order update needs a link_id!"
				break
			}
			if reqData.OrderUpdates[i].Order < 1 {
				errors["order_updates"] = "Every order value must be at least 1!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// ChapterResources validates the public chapter content listing
func ChapterResources() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}
