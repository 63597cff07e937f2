package service

import (
	"context"

	"gorm.io/gorm"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
)

// CartService is the stock reservation engine. Adding to the cart reserves
// inventory immediately; the remove-item path returns it one unit at a time.
// Every stock-coupled mutation runs in one transaction with the equipment row
// locked, so concurrent requests against the same item serialize and the
// quantity can never go negative.
type CartService interface {
	AddToCart(ctx context.Context, userID, equipmentID uint, quantity int) (*model.CartLine, error)
	RemoveItemByModel(ctx context.Context, userID uint, modelNumber string) (*model.CartLine, error)
	DeleteLine(ctx context.Context, userID, lineID uint) error
	ViewCart(ctx context.Context, userID uint) ([]model.CartLine, error)
}

type cartService struct {
	cartRepo      repository.CartRepository
	equipmentRepo repository.EquipmentRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, equipmentRepo repository.EquipmentRepository) CartService {
	return &cartService{
		cartRepo:      cartRepo,
		equipmentRepo: equipmentRepo,
	}
}

// AddToCart reserves quantity units of an equipment for the user. An existing
// line for the same equipment grows; otherwise a line is created. Stock is
// decremented in the same transaction, with status In Use on exact depletion.
func (s *cartService) AddToCart(ctx context.Context, userID, equipmentID uint, quantity int) (*model.CartLine, error) {
	if quantity <= 0 {
		return nil, errors.ErrInvalidQuantity
	}

	var line *model.CartLine
	err := s.cartRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		equipment, err := s.equipmentRepo.FindByIDForUpdateTx(ctx, tx, equipmentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrEquipmentNotFound
			}
			return err
		}

		if equipment.Quantity < quantity {
			return errors.ErrInsufficientStock
		}

		existing, err := s.cartRepo.FindByUserAndEquipmentTx(ctx, tx, userID, equipmentID)
		switch {
		case err == nil:
			existing.Quantity += quantity
			if err := s.cartRepo.UpdateQuantityTx(ctx, tx, existing.ID, existing.Quantity); err != nil {
				return err
			}
			line = existing
		case err == gorm.ErrRecordNotFound:
			line = &model.CartLine{
				UserID:      userID,
				EquipmentID: equipmentID,
				Quantity:    quantity,
			}
			if err := s.cartRepo.CreateTx(ctx, tx, line); err != nil {
				return err
			}
		default:
			return err
		}

		newQuantity := equipment.Quantity - quantity
		status := model.StatusAvailable
		if newQuantity == 0 {
			status = model.StatusInUse
		}
		return s.equipmentRepo.UpdateStockTx(ctx, tx, equipmentID, newQuantity, status)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveItemByModel removes one unit of the caller's first cart line whose
// equipment matches the model number, deleting the line when it would reach
// zero, and restocks one unit. Returns the surviving line, or nil when the
// line was deleted.
func (s *cartService) RemoveItemByModel(ctx context.Context, userID uint, modelNumber string) (*model.CartLine, error) {
	var line *model.CartLine
	err := s.cartRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		cartLine, err := s.cartRepo.FindFirstByModelTx(ctx, tx, userID, modelNumber)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrCartLineNotFound
			}
			return err
		}

		equipment, err := s.equipmentRepo.FindByIDForUpdateTx(ctx, tx, cartLine.EquipmentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrEquipmentNotFound
			}
			return err
		}

		if cartLine.Quantity > 1 {
			cartLine.Quantity--
			if err := s.cartRepo.UpdateQuantityTx(ctx, tx, cartLine.ID, cartLine.Quantity); err != nil {
				return err
			}
			line = cartLine
		} else {
			if err := s.cartRepo.DeleteTx(ctx, tx, cartLine.ID); err != nil {
				return err
			}
			line = nil
		}

		restocked := equipment.Quantity + 1
		status := model.StatusAvailable
		if restocked <= 0 {
			status = model.StatusOutOfStock
		}
		return s.equipmentRepo.UpdateStockTx(ctx, tx, equipment.ID, restocked, status)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// DeleteLine hard-deletes a cart line owned by the user. Stock is not
// returned; only the remove-item path restocks.
func (s *cartService) DeleteLine(ctx context.Context, userID, lineID uint) error {
	line, err := s.cartRepo.FindByID(ctx, lineID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCartLineNotFound
		}
		return err
	}

	// Ownership failure is reported as not-found to avoid leaking other
	// users' cart line ids.
	if line.UserID != userID {
		return errors.ErrCartLineNotFound
	}

	return s.cartRepo.Delete(ctx, lineID)
}

// ViewCart lists the user's cart lines with equipment details.
func (s *cartService) ViewCart(ctx context.Context, userID uint) ([]model.CartLine, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}
