package repository

import (
	"context"

	"gorm.io/gorm"

	"rentaldesk/internal/model"
)

// CartRepository defines cart line persistence operations. The reservation
// engine drives all stock-coupled writes through the Tx variants inside
// WithTransaction.
type CartRepository interface {
	FindByID(ctx context.Context, id uint) (*model.CartLine, error)
	ListByUser(ctx context.Context, userID uint) ([]model.CartLine, error)
	Delete(ctx context.Context, id uint) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	FindByUserAndEquipmentTx(ctx context.Context, tx interface{}, userID, equipmentID uint) (*model.CartLine, error)
	FindFirstByModelTx(ctx context.Context, tx interface{}, userID uint, modelNumber string) (*model.CartLine, error)
	ListByUserTx(ctx context.Context, tx interface{}, userID uint) ([]model.CartLine, error)
	CreateTx(ctx context.Context, tx interface{}, line *model.CartLine) error
	UpdateQuantityTx(ctx context.Context, tx interface{}, id uint, quantity int) error
	DeleteTx(ctx context.Context, tx interface{}, id uint) error
	DeleteByUserTx(ctx context.Context, tx interface{}, userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// FindByID finds a cart line by ID.
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*model.CartLine, error) {
	var line model.CartLine
	if err := r.db.WithContext(ctx).First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// ListByUser returns the user's cart lines with equipment and supplier loaded
// for the cart view.
func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]model.CartLine, error) {
	var lines []model.CartLine
	if err := r.db.WithContext(ctx).
		Preload("Equipment").Preload("Equipment.Supplier").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Delete removes a cart line.
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartLine{}, id).Error
}

// WithTransaction executes a function within a database transaction.
func (r *cartRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// FindByUserAndEquipmentTx finds the user's cart line for an equipment within
// a transaction.
func (r *cartRepository) FindByUserAndEquipmentTx(ctx context.Context, tx interface{}, userID, equipmentID uint) (*model.CartLine, error) {
	txDB := tx.(*gorm.DB)
	var line model.CartLine
	if err := txDB.WithContext(ctx).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// FindFirstByModelTx finds the lowest-id cart line of the user whose
// equipment carries the given model number.
func (r *cartRepository) FindFirstByModelTx(ctx context.Context, tx interface{}, userID uint, modelNumber string) (*model.CartLine, error) {
	txDB := tx.(*gorm.DB)
	var line model.CartLine
	if err := txDB.WithContext(ctx).
		Joins("JOIN equipment ON equipment.id = cart_lines.equipment_id").
		Where("cart_lines.user_id = ? AND equipment.model_number = ?", userID, modelNumber).
		Order("cart_lines.id ASC").
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// ListByUserTx reads the user's raw cart lines within a transaction.
func (r *cartRepository) ListByUserTx(ctx context.Context, tx interface{}, userID uint) ([]model.CartLine, error) {
	txDB := tx.(*gorm.DB)
	var lines []model.CartLine
	if err := txDB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CreateTx inserts a cart line within a transaction.
func (r *cartRepository) CreateTx(ctx context.Context, tx interface{}, line *model.CartLine) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(line).Error
}

// UpdateQuantityTx overwrites a cart line's quantity within a transaction.
func (r *cartRepository) UpdateQuantityTx(ctx context.Context, tx interface{}, id uint, quantity int) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.CartLine{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// DeleteTx removes a cart line within a transaction.
func (r *cartRepository) DeleteTx(ctx context.Context, tx interface{}, id uint) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Delete(&model.CartLine{}, id).Error
}

// DeleteByUserTx clears all of a user's cart lines within a transaction.
func (r *cartRepository) DeleteByUserTx(ctx context.Context, tx interface{}, userID uint) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartLine{}).Error
}
