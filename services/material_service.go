package services

import (
	"errors"
	"strings"

	"materials-backend/models"

	"gorm.io/gorm"
)

// MaterialService is the entity layer for material records. Every write
// passes through the whole-record invariant checks here regardless of
// which transport (or test) called it.
type MaterialService struct {
	db *gorm.DB
}

// NewMaterialService creates a new material service
func NewMaterialService(db *gorm.DB) *MaterialService {
	return &MaterialService{db: db}
}

// CreateMaterialInput carries the full field set for a create
type CreateMaterialInput struct {
	MaterialCode     string
	MaterialName     string
	MaterialType     string
	MaterialBuyPrice float64
	SupplierID       uint
	CompanyID        uint
	Active           *bool // nil defaults to true
}

// UpdateMaterialInput carries a partial field set for an update.
// Nil fields keep their stored values.
type UpdateMaterialInput struct {
	MaterialCode     *string
	MaterialName     *string
	MaterialType     *string
	MaterialBuyPrice *float64
	SupplierID       *uint
	Active           *bool
}

// MaterialFilter narrows List results
type MaterialFilter struct {
	MaterialType string // equality filter, empty matches all
}

// Create validates and persists a new material record
func (s *MaterialService) Create(input CreateMaterialInput) (*models.Material, error) {
	material := models.Material{
		MaterialCode:     input.MaterialCode,
		MaterialName:     input.MaterialName,
		MaterialType:     input.MaterialType,
		MaterialBuyPrice: input.MaterialBuyPrice,
		SupplierID:       input.SupplierID,
		CompanyID:        input.CompanyID,
		Active:           true,
	}
	if input.Active != nil {
		material.Active = *input.Active
	}

	if material.MaterialName == "" {
		return nil, NewValidationError("Material Name cannot be empty!")
	}
	if !models.IsValidMaterialType(material.MaterialType) {
		return nil, NewValidationError("Invalid material_type. Must be: fabric, jeans, or cotton")
	}
	if err := s.checkInvariants(&material); err != nil {
		return nil, err
	}
	if err := s.checkSupplier(material.SupplierID); err != nil {
		return nil, err
	}

	if err := s.db.Create(&material).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Supplier").First(&material, material.ID)

	return &material, nil
}

// Update applies a partial field mapping to an existing record. Only
// supplied fields change, but the whole-record invariants (price floor,
// code emptiness, code uniqueness) are re-checked on every write.
func (s *MaterialService) Update(id uint, input UpdateMaterialInput) (*models.Material, error) {
	var material models.Material
	if err := s.db.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}

	if input.MaterialCode != nil {
		material.MaterialCode = *input.MaterialCode
	}
	if input.MaterialName != nil {
		material.MaterialName = *input.MaterialName
	}
	if input.MaterialType != nil {
		if !models.IsValidMaterialType(*input.MaterialType) {
			return nil, NewValidationError("Invalid material_type. Must be: fabric, jeans, or cotton")
		}
		material.MaterialType = *input.MaterialType
	}
	if input.MaterialBuyPrice != nil {
		material.MaterialBuyPrice = *input.MaterialBuyPrice
	}
	if input.SupplierID != nil {
		if err := s.checkSupplier(*input.SupplierID); err != nil {
			return nil, err
		}
		material.SupplierID = *input.SupplierID
	}
	if input.Active != nil {
		material.Active = *input.Active
	}

	if err := s.checkInvariants(&material); err != nil {
		return nil, err
	}

	if err := s.db.Save(&material).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Supplier").First(&material, material.ID)

	return &material, nil
}

// Delete removes a material record permanently
func (s *MaterialService) Delete(id uint) error {
	var material models.Material
	if err := s.db.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}

	return s.db.Delete(&material).Error
}

// GetByID returns a single material with its supplier resolved
func (s *MaterialService) GetByID(id uint) (*models.Material, error) {
	var material models.Material
	if err := s.db.Preload("Supplier").First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}

	return &material, nil
}

// List returns materials matching the filter, inactive records included
func (s *MaterialService) List(filter MaterialFilter) ([]models.Material, error) {
	var materials []models.Material
	query := s.db.Preload("Supplier").Order("id")

	if filter.MaterialType != "" {
		query = query.Where("material_type = ?", filter.MaterialType)
	}

	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}

	return materials, nil
}

// checkInvariants enforces the whole-record constraints on every write:
// price floor, non-empty code and code uniqueness.
func (s *MaterialService) checkInvariants(material *models.Material) error {
	if material.MaterialBuyPrice < 100 {
		return NewValidationError("Material Buy Price must be at least 100!")
	}
	if strings.TrimSpace(material.MaterialCode) == "" {
		return NewValidationError("Material Code cannot be empty!")
	}

	// Pre-check uniqueness; the storage-level unique index stays as the
	// backstop for writes racing between this check and the commit.
	var count int64
	if err := s.db.Model(&models.Material{}).
		Where("material_code = ? AND id <> ?", material.MaterialCode, material.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("Material Code must be unique!")
	}

	return nil
}

// checkSupplier resolves the reference and enforces the partner
// predicate: the supplier must be a company with a positive rank.
func (s *MaterialService) checkSupplier(supplierID uint) error {
	var supplier models.Supplier
	if err := s.db.First(&supplier, supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}

	if !supplier.IsCompany || supplier.SupplierRank <= 0 {
		return NewValidationError("Supplier must be a company with a positive supplier rank")
	}

	return nil
}
