package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

type ChapterRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

// CreateChapter validates chapter creation under /course/:id
func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(ChapterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		} else if invalidChars.MatchString(reqData.Title) {
			errors["title"] = "Title contains invalid characters!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateChapter validates chapter update under /course/:course_id/chapter/:chapter_id
func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		reqData := new(ChapterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// ChapterID validates routes carrying course_id and chapter_id parameters
func ChapterID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}
		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}
