package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentaldesk/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	// Transaction methods
	CreateTx(ctx context.Context, tx interface{}, order *model.Order) error
	UpsertLinesTx(ctx context.Context, tx interface{}, lines []model.OrderLine) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// ListByUser returns the user's orders, newest first, with lines and their
// equipment loaded.
func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").Preload("Lines.Equipment").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateTx inserts an order within a transaction.
func (r *orderRepository) CreateTx(ctx context.Context, tx interface{}, order *model.Order) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(order).Error
}

// UpsertLinesTx inserts order lines, merging quantity on (order_id,
// equipment_id) conflict. The order id is freshly generated so a conflict
// only arises on retry; merging keeps placement idempotent.
func (r *orderRepository) UpsertLinesTx(ctx context.Context, tx interface{}, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "equipment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&lines).Error
}
