package resourceValidator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

var validate = validator.New()

type ResourceRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=200"`
	Type        string          `json:"type" validate:"required,oneof=TEXT IMAGE VIDEO MARKDOWN QUIZ MODEL3D"`
	ContentData json.RawMessage `json:"content_data" validate:"required"`
	TagIDs      []uint          `json:"tag_ids" validate:"dive,min=1"`
	NewTags     []string        `json:"new_tags" validate:"dive,min=1,max=50"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "oneof":
				errors[field] = "Type must be one of TEXT, IMAGE, VIDEO, MARKDOWN, QUIZ, MODEL3D!"
			case "min":
				errors[field] = "Value is too short!"
			case "max":
				errors[field] = "Value is too long!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	} else {
		errors["body"] = "Invalid request data!"
	}
	return errors
}

// CreateResource validates resource creation
func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResourceRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

type ResourceUpdateRequest struct {
	Title       string          `json:"title" validate:"omitempty,min=3,max=200"`
	Type        string          `json:"type" validate:"omitempty,oneof=TEXT IMAGE VIDEO MARKDOWN QUIZ MODEL3D"`
	ContentData json.RawMessage `json:"content_data"`
	TagIDs      *[]uint         `json:"tag_ids"`
	NewTags     *[]string       `json:"new_tags"`
}

// UpdateResource validates partial resource updates
func UpdateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resourceID := strings.TrimSpace(c.Params("id"))
		if resourceID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource ID is required!", nil)
		}

		reqData := new(ResourceUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedResourceUpdate", reqData)
		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

// ResourceID validates routes that only carry a resource id parameter
func ResourceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resourceID := strings.TrimSpace(c.Params("id"))
		if resourceID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource ID is required!", nil)
		}
		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

type ResourceListQuery struct {
	Tag       string
	Type      string
	TeacherID uint
}

// ListResources validates the resource listing filters
func ListResources() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ResourceListQuery{
			Tag:  strings.TrimSpace(c.Query("tag")),
			Type: strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		}

		if raw := strings.TrimSpace(c.Query("teacher_id")); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher_id filter!", nil)
			}
			query.TeacherID = uint(id)
		}

		c.Locals("validatedResourceList", query)
		return c.Next()
	}
}
