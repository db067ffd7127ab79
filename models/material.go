package models

import (
	"time"

	"gorm.io/gorm"
)

// Material type selection values
const (
	MaterialTypeFabric = "fabric"
	MaterialTypeJeans  = "jeans"
	MaterialTypeCotton = "cotton"
)

// MaterialTypes lists every allowed material_type value
var MaterialTypes = []string{MaterialTypeFabric, MaterialTypeJeans, MaterialTypeCotton}

// IsValidMaterialType reports whether t is one of the allowed selection values
func IsValidMaterialType(t string) bool {
	for _, v := range MaterialTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Material represents a registered material record
type Material struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	MaterialCode     string    `json:"material_code" gorm:"not null;size:255;uniqueIndex"`
	MaterialName     string    `json:"material_name" gorm:"not null"`
	MaterialType     string    `json:"material_type" gorm:"not null"` // fabric, jeans or cotton
	MaterialBuyPrice float64   `json:"material_buy_price" gorm:"not null"`
	SupplierID       uint      `json:"supplier_id" gorm:"not null;index"`
	Active           bool      `json:"active" gorm:"default:true"` // visibility flag, independent of hard delete
	CompanyID        uint      `json:"company_id" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Associations
	Supplier Supplier `json:"supplier" gorm:"foreignKey:SupplierID"`
	Company  Company  `json:"company" gorm:"foreignKey:CompanyID"`
}

// BeforeCreate sets the creation timestamps
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the write timestamp
func (m *Material) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}
