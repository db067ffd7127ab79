package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"materials-backend/models"
	"materials-backend/services"
	"materials-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaterialController exposes the material CRUD endpoints. Each write
// endpoint re-validates its payload field by field before delegating to
// the service layer, which enforces the same invariants again; direct
// service calls stay guarded even when this layer is bypassed.
type MaterialController struct {
	db        *gorm.DB
	materials *services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{
		db:        db,
		materials: services.NewMaterialService(db),
	}
}

// CreateMaterialRequest is the POST /api/materials payload
type CreateMaterialRequest struct {
	MaterialCode     *string      `json:"material_code"`
	MaterialName     *string      `json:"material_name"`
	MaterialType     *string      `json:"material_type"`
	MaterialBuyPrice *NumberField `json:"material_buy_price"`
	SupplierID       *IntField    `json:"supplier_id"`
	Active           *bool        `json:"active"`
}

// UpdateMaterialRequest is the PUT /api/materials/:id payload; absent
// fields leave the stored values untouched
type UpdateMaterialRequest struct {
	MaterialCode     *string      `json:"material_code"`
	MaterialName     *string      `json:"material_name"`
	MaterialType     *string      `json:"material_type"`
	MaterialBuyPrice *NumberField `json:"material_buy_price"`
	SupplierID       *IntField    `json:"supplier_id"`
	Active           *bool        `json:"active"`
}

// GetMaterials returns every material record, inactive ones included.
// An optional material_type query parameter narrows the result.
func (mc *MaterialController) GetMaterials(c *fiber.Ctx) error {
	filter := services.MaterialFilter{
		MaterialType: c.Query("material_type"),
	}

	materials, err := mc.materials.List(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	result := make([]fiber.Map, 0, len(materials))
	for _, material := range materials {
		result = append(result, materialResponse(material))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"count":   len(result),
	})
}

// GetMaterial returns a single material by id. Not-found is reported in
// the body only, without a 404 status, matching the list/detail split of
// the original API.
func (mc *MaterialController) GetMaterial(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.JSON(fiber.Map{
			"error": "Material not found",
		})
	}

	material, err := mc.materials.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMaterialNotFound) {
			return c.JSON(fiber.Map{
				"error": "Material not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    materialResponse(*material),
	})
}

// CreateMaterial validates the payload and creates a material record.
// Validation failures answer 200 with an error body; this endpoint
// never signals errors through the status code.
func (mc *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Required fields, checked in a fixed order; the first failure wins
	if req.MaterialCode == nil || *req.MaterialCode == "" {
		return c.JSON(fiber.Map{"error": "Field material_code is required"})
	}
	if req.MaterialName == nil || *req.MaterialName == "" {
		return c.JSON(fiber.Map{"error": "Field material_name is required"})
	}
	if req.MaterialType == nil || *req.MaterialType == "" {
		return c.JSON(fiber.Map{"error": "Field material_type is required"})
	}
	if req.MaterialBuyPrice == nil || req.MaterialBuyPrice.Empty {
		return c.JSON(fiber.Map{"error": "Field material_buy_price is required"})
	}
	if req.SupplierID == nil || req.SupplierID.Empty {
		return c.JSON(fiber.Map{"error": "Field supplier_id is required"})
	}

	if !models.IsValidMaterialType(*req.MaterialType) {
		return c.JSON(fiber.Map{
			"error": "Invalid material_type. Must be: fabric, jeans, or cotton",
		})
	}

	if !req.MaterialBuyPrice.Valid {
		return c.JSON(fiber.Map{"error": "Material Buy Price must be a valid number"})
	}
	if req.MaterialBuyPrice.Value < 100 {
		return c.JSON(fiber.Map{"error": "Material Buy Price must be at least 100"})
	}

	if !req.SupplierID.Valid {
		return c.JSON(fiber.Map{"error": "Supplier ID must be a valid number"})
	}
	var supplier models.Supplier
	if err := mc.db.First(&supplier, req.SupplierID.Value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.JSON(fiber.Map{"error": "Internal server error"})
	}

	material, err := mc.materials.Create(services.CreateMaterialInput{
		MaterialCode:     *req.MaterialCode,
		MaterialName:     *req.MaterialName,
		MaterialType:     *req.MaterialType,
		MaterialBuyPrice: req.MaterialBuyPrice.Value,
		SupplierID:       uint(req.SupplierID.Value),
		CompanyID:        mc.resolveCompanyID(c),
		Active:           req.Active,
	})
	if err != nil {
		return c.JSON(fiber.Map{"error": materialErrorMessage(err)})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Material created successfully",
		"id":      material.ID,
	})
}

// UpdateMaterial re-validates every guarded field present in the payload
// and applies the partial mapping. Errors are body-only, like Create.
func (mc *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.JSON(fiber.Map{"error": "Material not found"})
	}

	var existing models.Material
	if err := mc.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"error": "Material not found"})
		}
		return c.JSON(fiber.Map{"error": "Internal server error"})
	}

	var req UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.MaterialType != nil && !models.IsValidMaterialType(*req.MaterialType) {
		return c.JSON(fiber.Map{
			"error": "Invalid material_type. Must be: fabric, jeans, or cotton",
		})
	}

	if req.MaterialBuyPrice != nil {
		if !req.MaterialBuyPrice.Valid {
			return c.JSON(fiber.Map{"error": "Material Buy Price must be a valid number"})
		}
		if req.MaterialBuyPrice.Value < 100 {
			return c.JSON(fiber.Map{"error": "Material Buy Price must be at least 100"})
		}
	}

	if req.SupplierID != nil {
		if !req.SupplierID.Valid {
			return c.JSON(fiber.Map{"error": "Supplier ID must be a valid number"})
		}
		var supplier models.Supplier
		if err := mc.db.First(&supplier, req.SupplierID.Value).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(fiber.Map{"error": "Supplier not found"})
			}
			return c.JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	input := services.UpdateMaterialInput{
		MaterialCode: req.MaterialCode,
		MaterialName: req.MaterialName,
		MaterialType: req.MaterialType,
		Active:       req.Active,
	}
	if req.MaterialBuyPrice != nil && req.MaterialBuyPrice.Valid {
		input.MaterialBuyPrice = &req.MaterialBuyPrice.Value
	}
	if req.SupplierID != nil && req.SupplierID.Valid {
		supplierID := uint(req.SupplierID.Value)
		input.SupplierID = &supplierID
	}

	if _, err := mc.materials.Update(uint(id), input); err != nil {
		return c.JSON(fiber.Map{"error": materialErrorMessage(err)})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Material updated successfully",
	})
}

// DeleteMaterial removes a record permanently. Unlike Create/Update this
// endpoint carries real status codes: 404 for a missing id, 500 for
// unexpected failures.
func (mc *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Material not found"})
	}

	if err := mc.materials.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrMaterialNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Material not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Material deleted successfully",
	})
}

// resolveCompanyID picks the caller's organizational context: the
// company claim of a valid bearer token, or the default company.
func (mc *MaterialController) resolveCompanyID(c *fiber.Ctx) uint {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if claims, err := utils.ValidateJWT(tokenString); err == nil && claims.CompanyID > 0 {
			return claims.CompanyID
		}
	}

	companyID, err := models.DefaultCompanyID(mc.db)
	if err != nil {
		return 0
	}
	return companyID
}

// materialErrorMessage maps service errors onto response messages.
// Validation and referential failures keep their field message; anything
// else flattens to the generic internal error.
func materialErrorMessage(err error) string {
	if services.IsValidationError(err) ||
		errors.Is(err, services.ErrSupplierNotFound) ||
		errors.Is(err, services.ErrMaterialNotFound) {
		return err.Error()
	}
	return "Internal server error"
}

// materialResponse flattens a record into the wire shape
func materialResponse(m models.Material) fiber.Map {
	return fiber.Map{
		"id":                 m.ID,
		"material_code":      m.MaterialCode,
		"material_name":      m.MaterialName,
		"material_type":      m.MaterialType,
		"material_buy_price": m.MaterialBuyPrice,
		"supplier_id":        m.SupplierID,
		"supplier_name":      m.Supplier.Name,
		"create_date":        formatDate(m.CreatedAt),
		"write_date":         formatDate(m.UpdatedAt),
	}
}

// formatDate renders a timestamp as RFC 3339, or null when unset
func formatDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
