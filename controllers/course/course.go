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

// CreateCourse creates a new course owned by the acting teacher
func CreateCourse(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		TeacherID:   teacher.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "CreateCourse", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates an owned course
func UpdateCourse(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	course, err := courseService.ResolveOwnedCourse(db, uint(courseID), teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "UpdateCourse", err)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}

	if err := db.Save(course).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "UpdateCourse", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes an owned course with its chapters and content links
func DeleteCourse(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	if err := courseService.DeleteCourse(database.Database.Db, uint(courseID), teacher.ID); err != nil {
		return middleware.ServiceErrorResponse(c, "DeleteCourse", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// TeacherCourses lists the acting teacher's own courses
func TeacherCourses(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("teacher_id = ?", teacher.ID).
		Order("created_at DESC").
		Find(&courses).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "TeacherCourses", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetAllCourses lists all courses for browsing
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "GetAllCourses", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns one course with its chapters in display order
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var chapters []courseModels.Chapter
	if err := db.Where("course_id = ?", course.ID).
		Order("order_index ASC, id ASC").
		Find(&chapters).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "GetCourseDetails", err)
	}

	var teacher models.User
	teacherSummary := models.PublicUser{}
	if err := db.First(&teacher, course.TeacherID).Error; err == nil {
		teacherSummary = teacher.Public()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"chapters": chapters,
		"teacher":  teacherSummary,
	})
}
