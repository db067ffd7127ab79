package routes

import (
	"materials-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the authentication endpoints
func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController) {
	auth := app.Group("/auth")

	auth.Post("/register", authController.Register) // POST /auth/register - create an account
	auth.Post("/login", authController.Login)       // POST /auth/login - issue a token
}
