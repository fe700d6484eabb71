package middleware

import (
	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/models"
)

// RequireRole loads the authenticated user and checks their role before letting
// the request through. The loaded user is stored in locals for the handlers.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.First(&user, userID).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by RequireRole, or looks it up from the
// JWT user id for routes that accept any role.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	if user, ok := c.Locals("user").(*models.User); ok {
		return user, true
	}
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, false
	}
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return nil, false
	}
	return &user, true
}
