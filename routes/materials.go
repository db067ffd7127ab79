package routes

import (
	"materials-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupMaterialRoutes registers the material CRUD endpoints
func SetupMaterialRoutes(app *fiber.App, materialController *controllers.MaterialController) {
	api := app.Group("/api")

	materials := api.Group("/materials")
	materials.Get("/", materialController.GetMaterials)         // GET /api/materials - list all materials
	materials.Get("/:id", materialController.GetMaterial)       // GET /api/materials/:id - get one material
	materials.Post("/", materialController.CreateMaterial)      // POST /api/materials - register a material
	materials.Put("/:id", materialController.UpdateMaterial)    // PUT /api/materials/:id - partial update
	materials.Delete("/:id", materialController.DeleteMaterial) // DELETE /api/materials/:id - hard delete
}
