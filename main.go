package main

import (
	"log"
	"os"
	"time"

	"materials-backend/controllers"
	"materials-backend/models"
	"materials-backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Database initialization
	db, err := models.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Automigration
	db.AutoMigrate(&models.Company{}, &models.Supplier{}, &models.User{}, &models.Material{})

	// Seed the default company and the partner registry
	initDefaultCompany(db)
	initDefaultSuppliers(db)

	// Fiber application
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"code":    code,
			})
		},
	})

	// Middleware
	app.Use(logger.New())

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Controllers
	authController := controllers.NewAuthController(db)
	materialController := controllers.NewMaterialController(db)
	supplierController := controllers.NewSupplierController(db)

	// Routes
	routes.SetupAuthRoutes(app, authController)
	routes.SetupMaterialRoutes(app, materialController)
	routes.SetupSupplierRoutes(app, supplierController)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "Materials Backend is running",
			"timestamp": time.Now().Unix(),
		})
	})

	// Server startup
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

// initDefaultCompany makes sure at least one company exists to own
// records created without an organizational context
func initDefaultCompany(db *gorm.DB) {
	var count int64
	db.Model(&models.Company{}).Count(&count)

	if count == 0 {
		company := models.Company{Name: "Main Company", IsDefault: true}
		if err := db.Create(&company).Error; err != nil {
			log.Printf("Failed to create default company: %v", err)
		} else {
			log.Printf("Created default company: %s", company.Name)
		}
	} else {
		log.Printf("Companies already present (%d records)", count)
	}
}

// initDefaultSuppliers seeds the partner registry with vendor records.
// The materials API treats this registry as read-only.
func initDefaultSuppliers(db *gorm.DB) {
	defaultSuppliers := []models.Supplier{
		{Name: "Textile Global Co.", Email: "sales@textileglobal.example", IsCompany: true, SupplierRank: 2, IsActive: true},
		{Name: "Denim Works Ltd.", Email: "orders@denimworks.example", IsCompany: true, SupplierRank: 1, IsActive: true},
		{Name: "Cotton Fields Trading", Email: "contact@cottonfields.example", IsCompany: true, SupplierRank: 1, IsActive: true},
		{Name: "Fabric House International", Email: "info@fabrichouse.example", IsCompany: true, SupplierRank: 3, IsActive: true},
	}

	var count int64
	db.Model(&models.Supplier{}).Count(&count)

	if count == 0 {
		log.Println("Seeding default suppliers...")
		for _, supplier := range defaultSuppliers {
			if err := db.Create(&supplier).Error; err != nil {
				log.Printf("Failed to create supplier '%s': %v", supplier.Name, err)
			} else {
				log.Printf("Created supplier: %s", supplier.Name)
			}
		}
		log.Println("Default suppliers seeded")
	} else {
		log.Printf("Suppliers already present (%d records)", count)
	}
}
