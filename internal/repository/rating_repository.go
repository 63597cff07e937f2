package repository

import (
	"context"

	"gorm.io/gorm"

	"rentaldesk/internal/model"
)

// RatingRepository defines rating persistence operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	FindByUserAndEquipment(ctx context.Context, userID, equipmentID uint) (*model.Rating, error)
	ListByEquipment(ctx context.Context, equipmentID uint) ([]model.Rating, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Rating, error)
	ListAll(ctx context.Context) ([]model.Rating, error)
	AverageScore(ctx context.Context, equipmentID uint) (float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create inserts a rating.
func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// FindByUserAndEquipment finds the user's rating for an equipment, if any.
func (r *ratingRepository) FindByUserAndEquipment(ctx context.Context, userID, equipmentID uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByEquipment returns all ratings for one equipment.
func (r *ratingRepository) ListByEquipment(ctx context.Context, equipmentID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("id DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListByUser returns all ratings submitted by one user.
func (r *ratingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListAll returns every rating with its user and equipment loaded, newest
// first, for the admin view.
func (r *ratingRepository) ListAll(ctx context.Context) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).
		Preload("User").Preload("Equipment").
		Order("id DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageScore computes the mean score for an equipment.
func (r *ratingRepository) AverageScore(ctx context.Context, equipmentID uint) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("equipment_id = ?", equipmentID).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}
