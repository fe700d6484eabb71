package resourceController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"lms/database"
	"lms/middleware"
	"lms/models"
	resourceModels "lms/models/resource"
	resourceService "lms/services/resource"
	"lms/utils"
	resourceValidator "lms/validators/resource"
)

// CreateResource creates a reusable resource authored by the acting teacher
func CreateResource(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*resourceValidator.ResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	tags, err := resourceService.ResolveTags(db, reqData.TagIDs, reqData.NewTags)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "CreateResource", err)
	}

	res := resourceModels.Resource{
		TeacherID:   teacher.ID,
		Title:       reqData.Title,
		Type:        reqData.Type,
		ContentData: datatypes.JSON(reqData.ContentData),
		Tags:        tags,
	}

	if err := db.Create(&res).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "CreateResource", err)
	}

	// URL-typed resources get a reachability probe in the background
	go utils.ProbeResourceURL(res.Type, res.ContentData)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", res)
}

// UpdateResource updates an owned resource; tag lists replace the existing set
func UpdateResource(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID := c.Locals("resourceID").(string)
	reqData, ok := c.Locals("validatedResourceUpdate").(*resourceValidator.ResourceUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	res, err := resourceService.ResolveOwnedResource(db, resourceID, teacher.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, "UpdateResource", err)
	}

	if reqData.Title != "" {
		res.Title = reqData.Title
	}
	if reqData.Type != "" {
		res.Type = reqData.Type
	}
	if len(reqData.ContentData) > 0 {
		res.ContentData = datatypes.JSON(reqData.ContentData)
	}

	if reqData.TagIDs != nil || reqData.NewTags != nil {
		var tagIDs []uint
		var newTags []string
		if reqData.TagIDs != nil {
			tagIDs = *reqData.TagIDs
		}
		if reqData.NewTags != nil {
			newTags = *reqData.NewTags
		}
		tags, err := resourceService.ResolveTags(db, tagIDs, newTags)
		if err != nil {
			return middleware.ServiceErrorResponse(c, "UpdateResource", err)
		}
		if err := db.Model(res).Association("Tags").Replace(tags); err != nil {
			return middleware.ServiceErrorResponse(c, "UpdateResource", err)
		}
		res.Tags = tags
	}

	if err := db.Save(res).Error; err != nil {
		return middleware.ServiceErrorResponse(c, "UpdateResource", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully!", res)
}

// DeleteResource removes an owned resource and every link referencing it
func DeleteResource(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID := c.Locals("resourceID").(string)

	if err := resourceService.DeleteResource(database.Database.Db, resourceID, teacher.ID); err != nil {
		return middleware.ServiceErrorResponse(c, "DeleteResource", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}

// GetResource returns one resource with tags and author
func GetResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(string)

	db := database.Database.Db

	var res resourceModels.Resource
	if err := db.Preload("Tags").Where("id = ?", resourceID).First(&res).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	var author models.User
	authorSummary := models.PublicUser{}
	if err := db.First(&author, res.TeacherID).Error; err == nil {
		authorSummary = author.Public()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully!", fiber.Map{
		"resource": res,
		"author":   authorSummary,
	})
}

// ListResources lists resources with optional tag/type/teacher filters
func ListResources(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedResourceList").(*resourceValidator.ResourceListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resources, err := resourceService.ListResources(database.Database.Db, resourceService.ListFilter{
		TagName:   query.Tag,
		Type:      query.Type,
		TeacherID: query.TeacherID,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, "ListResources", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}

// TeacherResources lists the acting teacher's own resources
func TeacherResources(c *fiber.Ctx) error {
	teacher, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resources, err := resourceService.ListResources(database.Database.Db, resourceService.ListFilter{
		TeacherID: teacher.ID,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, "TeacherResources", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}
