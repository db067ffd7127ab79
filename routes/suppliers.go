package routes

import (
	"materials-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupSupplierRoutes registers the read-only supplier lookups
func SetupSupplierRoutes(app *fiber.App, supplierController *controllers.SupplierController) {
	api := app.Group("/api")

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", supplierController.GetSuppliers)   // GET /api/suppliers - list eligible vendors
	suppliers.Get("/:id", supplierController.GetSupplier) // GET /api/suppliers/:id - get one partner
}
