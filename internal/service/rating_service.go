package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
)

// RatingService manages per-user equipment ratings. One rating per
// (user, equipment); each accepted rating refreshes the equipment's
// aggregate score.
type RatingService interface {
	AddRating(ctx context.Context, userID, equipmentID uint, score int, comment string) (*model.Rating, error)
	ListForEquipment(ctx context.Context, equipmentID uint) ([]model.Rating, error)
	ListAll(ctx context.Context) ([]model.Rating, error)
}

type ratingService struct {
	ratingRepo    repository.RatingRepository
	equipmentRepo repository.EquipmentRepository
}

// NewRatingService creates a new rating service.
func NewRatingService(ratingRepo repository.RatingRepository, equipmentRepo repository.EquipmentRepository) RatingService {
	return &ratingService{
		ratingRepo:    ratingRepo,
		equipmentRepo: equipmentRepo,
	}
}

// AddRating validates and stores a rating, then recomputes the equipment's
// aggregate score.
func (s *ratingService) AddRating(ctx context.Context, userID, equipmentID uint, score int, comment string) (*model.Rating, error) {
	if score < 1 || score > 5 {
		return nil, errors.ErrInvalidScore
	}

	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEquipmentNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.FindByUserAndEquipment(ctx, userID, equipmentID)
	if err == nil && existing != nil {
		return nil, errors.ErrAlreadyRated
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	rating := &model.Rating{
		UserID:      userID,
		EquipmentID: equipmentID,
		Score:       score,
		Comment:     comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	avg, err := s.ratingRepo.AverageScore(ctx, equipmentID)
	if err == nil {
		aggregate := decimal.NewFromFloat(avg).Round(2)
		_ = s.equipmentRepo.UpdateRating(ctx, equipmentID, aggregate)
	}

	return rating, nil
}

// ListForEquipment returns the ratings of one equipment item.
func (s *ratingService) ListForEquipment(ctx context.Context, equipmentID uint) ([]model.Rating, error) {
	ratings, err := s.ratingRepo.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, errors.ErrRatingNotFound
	}
	return ratings, nil
}

// ListAll returns every rating for the admin view.
func (s *ratingService) ListAll(ctx context.Context) ([]model.Rating, error) {
	return s.ratingRepo.ListAll(ctx)
}
