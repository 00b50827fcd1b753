package authRoutes

import (
	authController "quizapp/controllers/auth"
	authValidator "quizapp/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up teacher account routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
