package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseService "lms/services/course"
	courseValidator "lms/validators/course"
)

// CreateChapter adds a chapter to an owned course
func CreateChapter(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedChapter").(*courseValidator.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter, err := courseService.CreateChapter(
		database.Database.Db, uint(courseID), teacher.ID,
		reqData.Title, reqData.Content, reqData.OrderIndex,
	)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "CreateChapter", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// UpdateChapter updates a chapter of an owned course
func UpdateChapter(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)
	reqData, ok := c.Locals("validatedChapter").(*courseValidator.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	_, chapter, err := courseService.ResolveOwnedChapter(db, uint(courseID), uint(chapterID), teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "UpdateChapter", err)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
	}
	if reqData.Content != "" {
		chapter.Content = reqData.Content
	}
	if reqData.OrderIndex > 0 {
		chapter.OrderIndex = reqData.OrderIndex
	}

	if err := db.Save(chapter).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "UpdateChapter", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// DeleteChapter removes a chapter and its content links
func DeleteChapter(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	if err := courseService.DeleteChapter(database.Database.Db, uint(courseID), uint(chapterID), teacher.ID); err != nil {
		return middleware.ServiceErrorResponse(c, "DeleteChapter", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// ListChapters returns a course's chapters in display order
func ListChapters(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	if err := db.First(&courseModels.Course{}, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var chapters []courseModels.Chapter
	if err := db.Where("course_id = ?", courseID).
		Order("order_index ASC, id ASC").
		Find(&chapters).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "ListChapters", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", fiber.Map{
		"chapters": chapters,
	})
}
