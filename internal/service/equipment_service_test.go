package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "rentaldesk/internal/errors"
	"rentaldesk/internal/model"
)

func TestEquipmentService_Create(t *testing.T) {
	t.Run("category and supplier resolved by name", func(t *testing.T) {
		mockEquipment := new(MockEquipmentRepository)
		mockCategory := new(MockCategoryRepository)
		mockSupplier := new(MockSupplierRepository)

		mockCategory.On("FindOrCreateByName", mock.Anything, "Power Tools").
			Return(&model.Category{ID: 2, Name: "Power Tools"}, nil)
		mockSupplier.On("FindOrCreateByName", mock.Anything, "Bosch").
			Return(&model.Supplier{ID: 3, Name: "Bosch"}, nil)
		mockEquipment.On("Create", mock.Anything, mock.AnythingOfType("*model.Equipment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Equipment).ID = 10
			}).Return(nil)

		service := NewEquipmentService(mockEquipment, mockCategory, mockSupplier)
		equipment, err := service.Create(context.Background(), EquipmentCreate{
			Name:         "Cordless Drill",
			ModelNumber:  "CD-18V",
			Quantity:     4,
			Status:       model.StatusAvailable,
			Location:     "Aisle 3",
			CategoryName: "Power Tools",
			SupplierName: "Bosch",
		})

		assert.NoError(t, err)
		assert.NotNil(t, equipment)
		assert.Equal(t, uint(10), equipment.ID)
		assert.Equal(t, uint(2), equipment.CategoryID)
		assert.Equal(t, uint(3), equipment.SupplierID)
		assert.Equal(t, "Power Tools", equipment.Category.Name)
		assert.Equal(t, "Bosch", equipment.Supplier.Name)
		// Rating defaults to 5 when the caller does not supply one.
		assert.True(t, equipment.Rating.Equal(decimal.NewFromInt(5)))

		mockEquipment.AssertExpectations(t)
		mockCategory.AssertExpectations(t)
		mockSupplier.AssertExpectations(t)
	})

	t.Run("explicit rating wins over the default", func(t *testing.T) {
		mockEquipment := new(MockEquipmentRepository)
		mockCategory := new(MockCategoryRepository)
		mockSupplier := new(MockSupplierRepository)

		mockCategory.On("FindOrCreateByName", mock.Anything, "Access").
			Return(&model.Category{ID: 4, Name: "Access"}, nil)
		mockSupplier.On("FindOrCreateByName", mock.Anything, "Layher").
			Return(&model.Supplier{ID: 5, Name: "Layher"}, nil)
		mockEquipment.On("Create", mock.Anything, mock.AnythingOfType("*model.Equipment")).Return(nil)

		rating := decimal.NewFromFloat(3.5)
		service := NewEquipmentService(mockEquipment, mockCategory, mockSupplier)
		equipment, err := service.Create(context.Background(), EquipmentCreate{
			Name:         "Scaffold Tower",
			Rating:       &rating,
			Quantity:     1,
			Status:       model.StatusAvailable,
			CategoryName: "Access",
			SupplierName: "Layher",
		})

		assert.NoError(t, err)
		assert.True(t, equipment.Rating.Equal(rating))
		mockEquipment.AssertExpectations(t)
	})
}

func TestEquipmentService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockEquipment := new(MockEquipmentRepository)
		mockEquipment.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewEquipmentService(mockEquipment, new(MockCategoryRepository), new(MockSupplierRepository))
		equipment, err := service.Update(context.Background(), 99, EquipmentUpdate{Quantity: intPtr(3)})

		assert.Equal(t, apperrors.ErrEquipmentNotFound, err)
		assert.Nil(t, equipment)
		mockEquipment.AssertExpectations(t)
	})

	t.Run("only supplied fields change", func(t *testing.T) {
		mockEquipment := new(MockEquipmentRepository)
		mockEquipment.On("FindByID", mock.Anything, uint(10)).Return(&model.Equipment{
			ID:          10,
			Name:        "Cordless Drill",
			ModelNumber: "CD-18V",
			Quantity:    4,
			Status:      model.StatusAvailable,
			Location:    "Aisle 3",
		}, nil)
		mockEquipment.On("Save", mock.Anything, mock.AnythingOfType("*model.Equipment")).Return(nil)

		status := model.StatusOutOfStock
		service := NewEquipmentService(mockEquipment, new(MockCategoryRepository), new(MockSupplierRepository))
		equipment, err := service.Update(context.Background(), 10, EquipmentUpdate{
			Quantity: intPtr(0),
			Status:   &status,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, equipment.Quantity)
		assert.Equal(t, model.StatusOutOfStock, equipment.Status)
		assert.Equal(t, "Cordless Drill", equipment.Name)
		assert.Equal(t, "Aisle 3", equipment.Location)
		mockEquipment.AssertExpectations(t)
	})
}

func TestEquipmentService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockEquipment := new(MockEquipmentRepository)
		mockEquipment.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewEquipmentService(mockEquipment, new(MockCategoryRepository), new(MockSupplierRepository))
		err := service.Delete(context.Background(), 99)

		assert.Equal(t, apperrors.ErrEquipmentNotFound, err)
		mockEquipment.AssertExpectations(t)
	})

	t.Run("existing entry deleted", func(t *testing.T) {
		mockEquipment := new(MockEquipmentRepository)
		mockEquipment.On("FindByID", mock.Anything, uint(10)).Return(&model.Equipment{ID: 10}, nil)
		mockEquipment.On("Delete", mock.Anything, uint(10)).Return(nil)

		service := NewEquipmentService(mockEquipment, new(MockCategoryRepository), new(MockSupplierRepository))
		assert.NoError(t, service.Delete(context.Background(), 10))
		mockEquipment.AssertExpectations(t)
	})
}

func intPtr(n int) *int { return &n }
