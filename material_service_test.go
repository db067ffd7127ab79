package main

import (
	"testing"

	"materials-backend/models"
	"materials-backend/services"

	"github.com/stretchr/testify/assert"
)

func validCreateInput(supplierID uint) services.CreateMaterialInput {
	return services.CreateMaterialInput{
		MaterialCode:     "MAT001",
		MaterialName:     "Test Fabric",
		MaterialType:     models.MaterialTypeFabric,
		MaterialBuyPrice: 150.0,
		SupplierID:       supplierID,
		CompanyID:        1,
	}
}

func TestMaterialServiceCreate(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	t.Run("Stored fields equal the input", func(t *testing.T) {
		material, err := service.Create(validCreateInput(supplierID))
		assert.NoError(t, err)
		assert.NotZero(t, material.ID)
		assert.Equal(t, "MAT001", material.MaterialCode)
		assert.Equal(t, "Test Fabric", material.MaterialName)
		assert.Equal(t, models.MaterialTypeFabric, material.MaterialType)
		assert.Equal(t, 150.0, material.MaterialBuyPrice)
		assert.Equal(t, supplierID, material.SupplierID)
		assert.Equal(t, "Test Supplier", material.Supplier.Name)
		assert.True(t, material.Active)
		assert.False(t, material.CreatedAt.IsZero())
	})

	t.Run("Duplicate code is rejected", func(t *testing.T) {
		input := validCreateInput(supplierID)
		input.MaterialName = "Other Fabric"
		input.MaterialType = models.MaterialTypeCotton
		input.MaterialBuyPrice = 999.0

		_, err := service.Create(input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unique")

		var count int64
		db.Model(&models.Material{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestMaterialServicePriceFloor(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	t.Run("Create below floor is rejected", func(t *testing.T) {
		input := validCreateInput(supplierID)
		input.MaterialBuyPrice = 99.99

		_, err := service.Create(input)
		assert.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "at least 100")

		var count int64
		db.Model(&models.Material{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("Exactly 100 passes", func(t *testing.T) {
		input := validCreateInput(supplierID)
		input.MaterialBuyPrice = 100.0

		material, err := service.Create(input)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, material.MaterialBuyPrice)
	})

	t.Run("Update below floor leaves the record unchanged", func(t *testing.T) {
		lowPrice := 50.0
		var material models.Material
		db.Where("material_code = ?", "MAT001").First(&material)

		_, err := service.Update(material.ID, services.UpdateMaterialInput{
			MaterialBuyPrice: &lowPrice,
		})
		assert.Error(t, err)
		assert.True(t, services.IsValidationError(err))

		var stored models.Material
		db.First(&stored, material.ID)
		assert.Equal(t, 100.0, stored.MaterialBuyPrice)
	})
}

func TestMaterialServiceCodeChecks(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	t.Run("Empty code is rejected", func(t *testing.T) {
		input := validCreateInput(supplierID)
		input.MaterialCode = ""

		_, err := service.Create(input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("Whitespace-only code is rejected", func(t *testing.T) {
		input := validCreateInput(supplierID)
		input.MaterialCode = "   "

		_, err := service.Create(input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("Update to a taken code is rejected", func(t *testing.T) {
		first, err := service.Create(validCreateInput(supplierID))
		assert.NoError(t, err)

		input := validCreateInput(supplierID)
		input.MaterialCode = "MAT002"
		second, err := service.Create(input)
		assert.NoError(t, err)

		taken := first.MaterialCode
		_, err = service.Update(second.ID, services.UpdateMaterialInput{
			MaterialCode: &taken,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unique")
	})

	t.Run("Update keeping its own code passes", func(t *testing.T) {
		var material models.Material
		db.Where("material_code = ?", "MAT002").First(&material)

		own := material.MaterialCode
		newName := "Renamed Fabric"
		updated, err := service.Update(material.ID, services.UpdateMaterialInput{
			MaterialCode: &own,
			MaterialName: &newName,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed Fabric", updated.MaterialName)
	})
}

func TestMaterialServiceTypes(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	for _, materialType := range models.MaterialTypes {
		input := validCreateInput(supplierID)
		input.MaterialCode = "MAT_" + materialType
		input.MaterialType = materialType

		material, err := service.Create(input)
		assert.NoError(t, err)
		assert.Equal(t, materialType, material.MaterialType)
	}

	input := validCreateInput(supplierID)
	input.MaterialCode = "MAT_WOOL"
	input.MaterialType = "wool"

	_, err := service.Create(input)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid material_type")
}

func TestMaterialServiceSupplierChecks(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)

	t.Run("Missing supplier is rejected", func(t *testing.T) {
		input := validCreateInput(9999)
		_, err := service.Create(input)
		assert.ErrorIs(t, err, services.ErrSupplierNotFound)
	})

	t.Run("Non-company supplier is rejected", func(t *testing.T) {
		personID := createTestSupplier(db, "John the Person", false, 1)
		input := validCreateInput(personID)
		_, err := service.Create(input)
		assert.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("Zero-rank supplier is rejected", func(t *testing.T) {
		customerID := createTestSupplier(db, "Customer Co.", true, 0)
		input := validCreateInput(customerID)
		_, err := service.Create(input)
		assert.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("Company with positive rank passes", func(t *testing.T) {
		vendorID := createTestSupplier(db, "Vendor Co.", true, 2)
		input := validCreateInput(vendorID)
		material, err := service.Create(input)
		assert.NoError(t, err)
		assert.Equal(t, vendorID, material.SupplierID)
	})
}

func TestMaterialServicePartialUpdate(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	material, err := service.Create(validCreateInput(supplierID))
	assert.NoError(t, err)

	newName := "Updated Fabric"
	updated, err := service.Update(material.ID, services.UpdateMaterialInput{
		MaterialName: &newName,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Updated Fabric", updated.MaterialName)

	// Unnamed fields keep their prior values
	stored, err := service.GetByID(material.ID)
	assert.NoError(t, err)
	assert.Equal(t, "MAT001", stored.MaterialCode)
	assert.Equal(t, models.MaterialTypeFabric, stored.MaterialType)
	assert.Equal(t, 150.0, stored.MaterialBuyPrice)
	assert.Equal(t, supplierID, stored.SupplierID)
	assert.True(t, stored.Active)
}

func TestMaterialServiceVisibilityFlag(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	material, err := service.Create(validCreateInput(supplierID))
	assert.NoError(t, err)

	inactive := false
	updated, err := service.Update(material.ID, services.UpdateMaterialInput{
		Active: &inactive,
	})
	assert.NoError(t, err)
	assert.False(t, updated.Active)

	// Deactivation is not a delete; the record is still listed
	materials, err := service.List(services.MaterialFilter{})
	assert.NoError(t, err)
	assert.Len(t, materials, 1)
}

func TestMaterialServiceDelete(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	material, err := service.Create(validCreateInput(supplierID))
	assert.NoError(t, err)

	assert.NoError(t, service.Delete(material.ID))

	_, err = service.GetByID(material.ID)
	assert.ErrorIs(t, err, services.ErrMaterialNotFound)

	assert.ErrorIs(t, service.Delete(material.ID), services.ErrMaterialNotFound)
}

func TestMaterialServiceUpdateNotFound(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)

	newName := "Ghost"
	_, err := service.Update(12345, services.UpdateMaterialInput{MaterialName: &newName})
	assert.ErrorIs(t, err, services.ErrMaterialNotFound)
}

func TestMaterialServiceListFilter(t *testing.T) {
	db := setupTestDB()
	service := services.NewMaterialService(db)
	supplierID := createTestSupplier(db, "Test Supplier", true, 1)

	codes := map[string]string{
		models.MaterialTypeFabric: "FAB001",
		models.MaterialTypeJeans:  "JNS001",
		models.MaterialTypeCotton: "CTN001",
	}
	for materialType, code := range codes {
		input := validCreateInput(supplierID)
		input.MaterialCode = code
		input.MaterialType = materialType
		_, err := service.Create(input)
		assert.NoError(t, err)
	}

	input := validCreateInput(supplierID)
	input.MaterialCode = "JNS002"
	input.MaterialType = models.MaterialTypeJeans
	_, err := service.Create(input)
	assert.NoError(t, err)

	jeans, err := service.List(services.MaterialFilter{MaterialType: models.MaterialTypeJeans})
	assert.NoError(t, err)
	assert.Len(t, jeans, 2)
	for _, material := range jeans {
		assert.Equal(t, models.MaterialTypeJeans, material.MaterialType)
	}

	all, err := service.List(services.MaterialFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 4)
}
