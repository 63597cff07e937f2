package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentaldesk/internal/model"
)

// EquipmentRepository defines equipment persistence operations.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *model.Equipment) error
	Save(ctx context.Context, equipment *model.Equipment) error
	FindByID(ctx context.Context, id uint) (*model.Equipment, error)
	List(ctx context.Context) ([]model.Equipment, error)
	Delete(ctx context.Context, id uint) error
	UpdateRating(ctx context.Context, id uint, rating decimal.Decimal) error
	// Transaction methods
	FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uint) (*model.Equipment, error)
	UpdateStockTx(ctx context.Context, tx interface{}, id uint, quantity int, status model.EquipmentStatus) error
}

type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository.
func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

// Create creates a new equipment record.
func (r *equipmentRepository) Create(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

// Save persists all fields of an existing equipment record.
func (r *equipmentRepository) Save(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

// FindByID finds an equipment item by ID with its category and supplier.
func (r *equipmentRepository) FindByID(ctx context.Context, id uint) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Supplier").
		First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

// List returns the full catalog ordered by id.
func (r *equipmentRepository) List(ctx context.Context) ([]model.Equipment, error) {
	var items []model.Equipment
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Supplier").
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an equipment record.
func (r *equipmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Equipment{}, id).Error
}

// UpdateRating writes the recomputed rating aggregate.
func (r *equipmentRepository) UpdateRating(ctx context.Context, id uint, rating decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Equipment{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

// FindByIDForUpdateTx finds an equipment row with a row-level lock within a
// transaction. Every stock mutation goes through this lock.
func (r *equipmentRepository) FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uint) (*model.Equipment, error) {
	txDB := tx.(*gorm.DB)
	var equipment model.Equipment
	if err := txDB.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

// UpdateStockTx writes quantity and status within a transaction.
func (r *equipmentRepository) UpdateStockTx(ctx context.Context, tx interface{}, id uint, quantity int, status model.EquipmentStatus) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity, "status": status}).Error
}
