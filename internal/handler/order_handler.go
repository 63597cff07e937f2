package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder godoc
// @Summary Convert the cart into an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /order/new [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Order placed successfully.",
		"order_id": order.ID,
	})
}

// ListOrders godoc
// @Summary List the caller's orders with items and rating state
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/view [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}
