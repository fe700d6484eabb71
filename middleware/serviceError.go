package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/services"
)

// ServiceErrorResponse maps a service error onto the HTTP response envelope.
// Caller-attributable kinds are surfaced verbatim; anything else is logged with
// its context and reported as a generic failure.
func ServiceErrorResponse(c *fiber.Ctx, operation string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, services.ErrValidation):
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	default:
		log.Printf("%s failed: %v", operation, err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong. Please try again.", nil)
	}
}
