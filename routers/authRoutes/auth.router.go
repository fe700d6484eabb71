package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"
)

// SetupAuthRoutes sets up signup/login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
}
