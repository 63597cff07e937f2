package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCartRequest represents an add-to-cart request.
type AddToCartRequest struct {
	EquipmentID uint `json:"equipment_id" validate:"required"`
	Quantity    int  `json:"quantity" validate:"required"`
}

// RemoveItemRequest represents a remove-one-unit request.
type RemoveItemRequest struct {
	ModelNumber string `json:"model_number" validate:"required"`
}

// CartLineResponse is one cart line with equipment details flattened.
type CartLineResponse struct {
	CartID       uint            `json:"cart_id"`
	EquipmentID  uint            `json:"equipment_id"`
	Name         string          `json:"equipment_name"`
	ModelNumber  string          `json:"model_number"`
	Quantity     int             `json:"quantity"`
	CategoryID   uint            `json:"category_id"`
	Status       string          `json:"status"`
	Rating       decimal.Decimal `json:"rating"`
	SupplierName string          `json:"supplier_name"`
}

func toCartLineResponse(line *model.CartLine) CartLineResponse {
	return CartLineResponse{
		CartID:       line.ID,
		EquipmentID:  line.EquipmentID,
		Name:         line.Equipment.Name,
		ModelNumber:  line.Equipment.ModelNumber,
		Quantity:     line.Quantity,
		CategoryID:   line.Equipment.CategoryID,
		Status:       line.Equipment.Status,
		Rating:       line.Equipment.Rating,
		SupplierName: line.Equipment.Supplier.Name,
	}
}

// AddToCart godoc
// @Summary Add equipment to the cart, reserving stock
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddToCartRequest true "Equipment and quantity"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/new [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EquipmentID == 0 || req.Quantity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "equipment_id and positive quantity are required",
			Code:  "INVALID_INPUT",
		})
	}

	line, err := h.cartService.AddToCart(c.Request().Context(), claims.UserID, req.EquipmentID, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Item added to cart successfully.",
		"cart_id": line.ID,
	})
}

// ViewCart godoc
// @Summary View the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart/view [get]
func (h *CartHandler) ViewCart(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	lines, err := h.cartService.ViewCart(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	responses := make([]CartLineResponse, 0, len(lines))
	for i := range lines {
		responses = append(responses, toCartLineResponse(&lines[i]))
	}

	message := "Cart retrieved successfully."
	if len(responses) == 0 {
		message = "Your cart is empty."
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": message,
		"cart":    responses,
	})
}

// RemoveItem godoc
// @Summary Remove one unit of an item from the cart, restocking it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RemoveItemRequest true "Model number"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/remove-item [post]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req RemoveItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	line, err := h.cartService.RemoveItemByModel(c.Request().Context(), claims.UserID, req.ModelNumber)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	message := "Item removed from cart."
	if line != nil {
		message = "Item quantity reduced by 1."
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": message,
	})
}

// DeleteLine godoc
// @Summary Delete a cart line outright without restocking
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param cartId path int true "Cart line ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/delete/{cartId} [delete]
func (h *CartHandler) DeleteLine(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("cartId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart line ID")
	}

	if err := h.cartService.DeleteLine(c.Request().Context(), claims.UserID, uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Cart item deleted successfully.",
	})
}
