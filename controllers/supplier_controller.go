package controllers

import (
	"errors"
	"strconv"

	"materials-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SupplierController exposes read-only lookups into the partner
// registry. Supplier lifecycle is owned elsewhere; materials only
// reference these records.
type SupplierController struct {
	db *gorm.DB
}

// NewSupplierController creates a new SupplierController
func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{db: db}
}

// GetSuppliers returns the vendors eligible as material suppliers:
// active companies with a positive supplier rank
func (sc *SupplierController) GetSuppliers(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := sc.db.Where("is_company = ? AND supplier_rank > 0", true).
		Order("name").Find(&suppliers).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    suppliers,
		"count":   len(suppliers),
	})
}

// GetSupplier returns a single partner record by id
func (sc *SupplierController) GetSupplier(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Supplier not found",
		})
	}

	var supplier models.Supplier
	if err := sc.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"error": "Supplier not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    supplier,
	})
}
