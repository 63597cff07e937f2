package repository

import (
	"context"

	"gorm.io/gorm"

	"rentaldesk/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	FindOrCreateByName(ctx context.Context, name string) (*model.Category, error)
}

// SupplierRepository defines supplier persistence operations.
type SupplierRepository interface {
	FindOrCreateByName(ctx context.Context, name string) (*model.Supplier, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// FindOrCreateByName looks a category up by name, inserting it on miss.
func (r *categoryRepository) FindOrCreateByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	category = model.Category{Name: name}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository.
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

// FindOrCreateByName looks a supplier up by name, inserting it on miss.
func (r *supplierRepository) FindOrCreateByName(ctx context.Context, name string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&supplier).Error
	if err == nil {
		return &supplier, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	supplier = model.Supplier{Name: name}
	if err := r.db.WithContext(ctx).Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}
