package service

import (
	"context"
	"time"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
)

// OrderService converts carts into orders and exposes order history.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint) (*model.Order, error)
	ListOrders(ctx context.Context, userID uint) ([]OrderView, error)
}

// OrderItemView is one equipment line of an order together with the viewing
// user's rating state for that equipment.
type OrderItemView struct {
	EquipmentID   uint   `json:"equipment_id"`
	EquipmentName string `json:"equipment_name"`
	Quantity      int    `json:"quantity"`
	UserRating    *int   `json:"user_rating"`
}

// OrderView is one order with its items.
type OrderView struct {
	OrderID uint            `json:"order_id"`
	Date    time.Time       `json:"date"`
	Items   []OrderItemView `json:"items"`
}

type orderService struct {
	orderRepo  repository.OrderRepository
	cartRepo   repository.CartRepository
	ratingRepo repository.RatingRepository
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	ratingRepo repository.RatingRepository,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		ratingRepo: ratingRepo,
	}
}

// PlaceOrder consumes the user's cart: lines are grouped by equipment with
// quantities summed, one order plus its lines are written, and the cart is
// cleared, all in one transaction. Stock is untouched; it was reserved at
// add-to-cart time.
func (s *orderService) PlaceOrder(ctx context.Context, userID uint) (*model.Order, error) {
	var order *model.Order
	err := s.cartRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		lines, err := s.cartRepo.ListByUserTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return errors.ErrEmptyCart
		}

		// Group by equipment in first-seen order; duplicate rows for the
		// same equipment collapse into one order line.
		quantities := make(map[uint]int, len(lines))
		sequence := make([]uint, 0, len(lines))
		for _, line := range lines {
			if _, seen := quantities[line.EquipmentID]; !seen {
				sequence = append(sequence, line.EquipmentID)
			}
			quantities[line.EquipmentID] += line.Quantity
		}

		order = &model.Order{
			UserID: userID,
			Date:   time.Now(),
		}
		if err := s.orderRepo.CreateTx(ctx, tx, order); err != nil {
			return err
		}

		orderLines := make([]model.OrderLine, 0, len(sequence))
		for _, equipmentID := range sequence {
			orderLines = append(orderLines, model.OrderLine{
				OrderID:     order.ID,
				EquipmentID: equipmentID,
				Quantity:    quantities[equipmentID],
			})
		}
		if err := s.orderRepo.UpsertLinesTx(ctx, tx, orderLines); err != nil {
			return err
		}

		return s.cartRepo.DeleteByUserTx(ctx, tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the user's orders with items and per-item rating state.
func (s *orderService) ListOrders(ctx context.Context, userID uint) ([]OrderView, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	scoreByEquipment := make(map[uint]int, len(ratings))
	for _, r := range ratings {
		scoreByEquipment[r.EquipmentID] = r.Score
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{
			OrderID: order.ID,
			Date:    order.Date,
			Items:   make([]OrderItemView, 0, len(order.Lines)),
		}
		for _, line := range order.Lines {
			item := OrderItemView{
				EquipmentID:   line.EquipmentID,
				EquipmentName: line.Equipment.Name,
				Quantity:      line.Quantity,
			}
			if score, ok := scoreByEquipment[line.EquipmentID]; ok {
				item.UserRating = &score
			}
			view.Items = append(view.Items, item)
		}
		views = append(views, view)
	}
	return views, nil
}
