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

func TestRatingService_AddRating(t *testing.T) {
	tests := []struct {
		name          string
		score         int
		setupMock     func(*MockRatingRepository, *MockEquipmentRepository)
		expectedError error
	}{
		{
			name:          "score below range",
			score:         0,
			setupMock:     func(r *MockRatingRepository, e *MockEquipmentRepository) {},
			expectedError: apperrors.ErrInvalidScore,
		},
		{
			name:          "score above range",
			score:         6,
			setupMock:     func(r *MockRatingRepository, e *MockEquipmentRepository) {},
			expectedError: apperrors.ErrInvalidScore,
		},
		{
			name:  "equipment not found",
			score: 4,
			setupMock: func(r *MockRatingRepository, e *MockEquipmentRepository) {
				e.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEquipmentNotFound,
		},
		{
			name:  "already rated",
			score: 4,
			setupMock: func(r *MockRatingRepository, e *MockEquipmentRepository) {
				e.On("FindByID", mock.Anything, uint(10)).Return(&model.Equipment{ID: 10}, nil)
				r.On("FindByUserAndEquipment", mock.Anything, uint(1), uint(10)).
					Return(&model.Rating{ID: 3, UserID: 1, EquipmentID: 10, Score: 5}, nil)
			},
			expectedError: apperrors.ErrAlreadyRated,
		},
		{
			name:  "rating stored and aggregate refreshed",
			score: 4,
			setupMock: func(r *MockRatingRepository, e *MockEquipmentRepository) {
				e.On("FindByID", mock.Anything, uint(10)).Return(&model.Equipment{ID: 10}, nil)
				r.On("FindByUserAndEquipment", mock.Anything, uint(1), uint(10)).
					Return(nil, gorm.ErrRecordNotFound)
				r.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).Return(nil)
				r.On("AverageScore", mock.Anything, uint(10)).Return(4.5, nil)
				e.On("UpdateRating", mock.Anything, uint(10), mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.NewFromFloat(4.5))
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRating := new(MockRatingRepository)
			mockEquipment := new(MockEquipmentRepository)
			tt.setupMock(mockRating, mockEquipment)

			service := NewRatingService(mockRating, mockEquipment)
			rating, err := service.AddRating(context.Background(), 1, 10, tt.score, "solid tool")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, rating)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rating)
				assert.Equal(t, tt.score, rating.Score)
				assert.Equal(t, "solid tool", rating.Comment)
			}

			mockRating.AssertExpectations(t)
			mockEquipment.AssertExpectations(t)
		})
	}
}

func TestRatingService_ListForEquipment(t *testing.T) {
	t.Run("no ratings yet", func(t *testing.T) {
		mockRating := new(MockRatingRepository)
		mockEquipment := new(MockEquipmentRepository)
		mockRating.On("ListByEquipment", mock.Anything, uint(10)).Return([]model.Rating{}, nil)

		service := NewRatingService(mockRating, mockEquipment)
		ratings, err := service.ListForEquipment(context.Background(), 10)

		assert.Equal(t, apperrors.ErrRatingNotFound, err)
		assert.Nil(t, ratings)
		mockRating.AssertExpectations(t)
	})

	t.Run("returns ratings", func(t *testing.T) {
		mockRating := new(MockRatingRepository)
		mockEquipment := new(MockEquipmentRepository)
		mockRating.On("ListByEquipment", mock.Anything, uint(10)).Return([]model.Rating{
			{ID: 2, UserID: 3, EquipmentID: 10, Score: 5},
			{ID: 1, UserID: 1, EquipmentID: 10, Score: 4},
		}, nil)

		service := NewRatingService(mockRating, mockEquipment)
		ratings, err := service.ListForEquipment(context.Background(), 10)

		assert.NoError(t, err)
		assert.Len(t, ratings, 2)
		mockRating.AssertExpectations(t)
	})
}
