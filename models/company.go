package models

import (
	"time"

	"gorm.io/gorm"
)

// Company represents the owning organization of a material record
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	IsDefault bool      `json:"is_default" gorm:"default:false"` // fallback company for unauthenticated callers
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultCompanyID returns the company used when the caller carries no
// organizational context of its own.
func DefaultCompanyID(db *gorm.DB) (uint, error) {
	var company Company
	if err := db.Where("is_default = ?", true).First(&company).Error; err == nil {
		return company.ID, nil
	}
	// No explicit default, fall back to the first company
	if err := db.Order("id").First(&company).Error; err != nil {
		return 0, err
	}
	return company.ID, nil
}

// BeforeCreate sets the creation timestamps
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate refreshes the write timestamp
func (c *Company) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return nil
}
