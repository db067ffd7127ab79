package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a partner record in the external party registry.
// Materials only reference suppliers; this service never creates or
// deletes them through the materials API.
type Supplier struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	Email        string    `json:"email" gorm:"default:''"`
	Phone        string    `json:"phone" gorm:"default:''"`
	IsCompany    bool      `json:"is_company" gorm:"default:false"`
	SupplierRank int       `json:"supplier_rank" gorm:"default:0"` // > 0 marks an actual vendor
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets the creation timestamps
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the write timestamp
func (s *Supplier) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}
