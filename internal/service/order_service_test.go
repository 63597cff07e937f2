package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "rentaldesk/internal/errors"
	"rentaldesk/internal/model"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockOrderRepository, *MockCartRepository)
		expectedError error
	}{
		{
			name: "empty cart",
			setupMock: func(o *MockOrderRepository, c *MockCartRepository) {
				c.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				c.On("ListByUserTx", mock.Anything, mock.Anything, uint(1)).Return([]model.CartLine{}, nil)
			},
			expectedError: apperrors.ErrEmptyCart,
		},
		{
			name: "duplicate cart rows collapse into one order line",
			setupMock: func(o *MockOrderRepository, c *MockCartRepository) {
				c.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				c.On("ListByUserTx", mock.Anything, mock.Anything, uint(1)).Return([]model.CartLine{
					{ID: 1, UserID: 1, EquipmentID: 10, Quantity: 2},
					{ID: 2, UserID: 1, EquipmentID: 11, Quantity: 1},
					{ID: 3, UserID: 1, EquipmentID: 10, Quantity: 3},
				}, nil)
				o.On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Order")).
					Run(func(args mock.Arguments) {
						args.Get(2).(*model.Order).ID = 42
					}).Return(nil)
				o.On("UpsertLinesTx", mock.Anything, mock.Anything, mock.MatchedBy(func(lines []model.OrderLine) bool {
					if len(lines) != 2 {
						return false
					}
					first := lines[0].OrderID == 42 && lines[0].EquipmentID == 10 && lines[0].Quantity == 5
					second := lines[1].OrderID == 42 && lines[1].EquipmentID == 11 && lines[1].Quantity == 1
					return first && second
				})).Return(nil)
				c.On("DeleteByUserTx", mock.Anything, mock.Anything, uint(1)).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrder := new(MockOrderRepository)
			mockCart := new(MockCartRepository)
			mockRating := new(MockRatingRepository)
			tt.setupMock(mockOrder, mockCart)

			service := NewOrderService(mockOrder, mockCart, mockRating)
			order, err := service.PlaceOrder(context.Background(), 1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, uint(42), order.ID)
				assert.Equal(t, uint(1), order.UserID)
			}

			mockOrder.AssertExpectations(t)
			mockCart.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	placed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	mockRating := new(MockRatingRepository)

	mockOrder.On("ListByUser", mock.Anything, uint(1)).Return([]model.Order{
		{
			ID:     42,
			UserID: 1,
			Date:   placed,
			Lines: []model.OrderLine{
				{OrderID: 42, EquipmentID: 10, Quantity: 5, Equipment: model.Equipment{ID: 10, Name: "Cordless Drill"}},
				{OrderID: 42, EquipmentID: 11, Quantity: 1, Equipment: model.Equipment{ID: 11, Name: "Angle Grinder"}},
			},
		},
	}, nil)
	mockRating.On("ListByUser", mock.Anything, uint(1)).Return([]model.Rating{
		{ID: 1, UserID: 1, EquipmentID: 10, Score: 4},
	}, nil)

	service := NewOrderService(mockOrder, mockCart, mockRating)
	views, err := service.ListOrders(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, uint(42), views[0].OrderID)
	assert.Equal(t, placed, views[0].Date)
	assert.Len(t, views[0].Items, 2)

	rated := views[0].Items[0]
	assert.Equal(t, "Cordless Drill", rated.EquipmentName)
	assert.Equal(t, 5, rated.Quantity)
	if assert.NotNil(t, rated.UserRating) {
		assert.Equal(t, 4, *rated.UserRating)
	}

	unrated := views[0].Items[1]
	assert.Equal(t, "Angle Grinder", unrated.EquipmentName)
	assert.Nil(t, unrated.UserRating)

	mockOrder.AssertExpectations(t)
	mockRating.AssertExpectations(t)
}
