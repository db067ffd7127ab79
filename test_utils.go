package main

import (
	"materials-backend/controllers"
	"materials-backend/models"
	"materials-backend/routes"
	"materials-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory test database with the default company
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to test database")
	}

	db.AutoMigrate(&models.Company{}, &models.Supplier{}, &models.User{}, &models.Material{})

	company := models.Company{Name: "Test Company", IsDefault: true}
	db.Create(&company)

	return db
}

// createTestApp builds a Fiber application with every route registered
func createTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	authController := controllers.NewAuthController(db)
	materialController := controllers.NewMaterialController(db)
	supplierController := controllers.NewSupplierController(db)

	routes.SetupAuthRoutes(app, authController)
	routes.SetupMaterialRoutes(app, materialController)
	routes.SetupSupplierRoutes(app, supplierController)

	return app
}

// createTestSupplier inserts a partner record and returns its ID
func createTestSupplier(db *gorm.DB, name string, isCompany bool, rank int) uint {
	supplier := models.Supplier{
		Name:         name,
		IsCompany:    isCompany,
		SupplierRank: rank,
		IsActive:     true,
	}
	db.Create(&supplier)
	return supplier.ID
}

// generateTestJWT issues a token for tests that need a caller context
func generateTestJWT(userID uint, companyID uint) string {
	token, _ := utils.GenerateJWT(userID, "test@example.com", companyID)
	return token
}
