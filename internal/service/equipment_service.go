package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
)

// EquipmentCreate carries the fields of a new catalog entry. Category and
// supplier are referenced by name and created on demand.
type EquipmentCreate struct {
	Name         string
	ImagePath    string
	Rating       *decimal.Decimal
	ModelNumber  string
	PurchaseDate *time.Time
	Quantity     int
	Status       model.EquipmentStatus
	Location     string
	CategoryName string
	SupplierName string
}

// EquipmentUpdate is an explicit partial update; only non-nil fields are
// applied.
type EquipmentUpdate struct {
	Name        *string
	ModelNumber *string
	Quantity    *int
	Status      *model.EquipmentStatus
	Location    *string
}

// EquipmentService manages the rental catalog.
type EquipmentService interface {
	List(ctx context.Context) ([]model.Equipment, error)
	Get(ctx context.Context, id uint) (*model.Equipment, error)
	Create(ctx context.Context, input EquipmentCreate) (*model.Equipment, error)
	Update(ctx context.Context, id uint, update EquipmentUpdate) (*model.Equipment, error)
	Delete(ctx context.Context, id uint) error
}

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	categoryRepo  repository.CategoryRepository
	supplierRepo  repository.SupplierRepository
}

// NewEquipmentService creates a new equipment service.
func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		categoryRepo:  categoryRepo,
		supplierRepo:  supplierRepo,
	}
}

// List returns the full catalog.
func (s *equipmentService) List(ctx context.Context) ([]model.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

// Get returns one catalog entry.
func (s *equipmentService) Get(ctx context.Context, id uint) (*model.Equipment, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return equipment, nil
}

// Create inserts a catalog entry, resolving category and supplier by name
// with insert-on-miss.
func (s *equipmentService) Create(ctx context.Context, input EquipmentCreate) (*model.Equipment, error) {
	category, err := s.categoryRepo.FindOrCreateByName(ctx, input.CategoryName)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindOrCreateByName(ctx, input.SupplierName)
	if err != nil {
		return nil, err
	}

	rating := decimal.NewFromInt(5)
	if input.Rating != nil {
		rating = *input.Rating
	}

	equipment := &model.Equipment{
		Name:         input.Name,
		ImagePath:    input.ImagePath,
		Rating:       rating,
		ModelNumber:  input.ModelNumber,
		PurchaseDate: input.PurchaseDate,
		Quantity:     input.Quantity,
		Status:       input.Status,
		Location:     input.Location,
		CategoryID:   category.ID,
		SupplierID:   supplier.ID,
	}
	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, err
	}

	equipment.Category = *category
	equipment.Supplier = *supplier
	return equipment, nil
}

// Update applies a partial update and returns the fresh record.
func (s *equipmentService) Update(ctx context.Context, id uint, update EquipmentUpdate) (*model.Equipment, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEquipmentNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		equipment.Name = *update.Name
	}
	if update.ModelNumber != nil {
		equipment.ModelNumber = *update.ModelNumber
	}
	if update.Quantity != nil {
		equipment.Quantity = *update.Quantity
	}
	if update.Status != nil {
		equipment.Status = *update.Status
	}
	if update.Location != nil {
		equipment.Location = *update.Location
	}

	if err := s.equipmentRepo.Save(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// Delete removes a catalog entry.
func (s *equipmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.equipmentRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrEquipmentNotFound
		}
		return err
	}
	return s.equipmentRepo.Delete(ctx, id)
}
