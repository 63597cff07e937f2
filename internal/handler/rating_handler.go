package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/service"
)

// RatingHandler handles rating endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// AddRatingRequest represents a rating submission.
type AddRatingRequest struct {
	EquipmentID uint   `json:"equipment_id" validate:"required"`
	Score       int    `json:"score" validate:"required"`
	Comment     string `json:"comment"`
}

// AdminRatingResponse is one rating with user and equipment flattened for the
// admin view.
type AdminRatingResponse struct {
	RatingID      uint   `json:"rating_id"`
	Username      string `json:"username"`
	EquipmentName string `json:"equipment_name"`
	Score         int    `json:"score"`
	Comment       string `json:"comment,omitempty"`
}

// AddRating godoc
// @Summary Rate an equipment item
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddRatingRequest true "Rating data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /rating/new [post]
func (h *RatingHandler) AddRating(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req AddRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.ratingService.AddRating(c.Request().Context(), claims.UserID, req.EquipmentID, req.Score, req.Comment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Successfully added rating.",
		"rating":  rating,
	})
}

// ListForEquipment godoc
// @Summary List ratings for an equipment item
// @Tags ratings
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /rating/{id} [get]
func (h *RatingHandler) ListForEquipment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment ID")
	}

	ratings, err := h.ratingService.ListForEquipment(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Ratings for equipment",
		"ratings": ratings,
	})
}

// ListAll godoc
// @Summary List all ratings
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /ratings/view [get]
func (h *RatingHandler) ListAll(c echo.Context) error {
	ratings, err := h.ratingService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	responses := make([]AdminRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		responses = append(responses, toAdminRatingResponse(r))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "List of all ratings",
		"ratings": responses,
	})
}

func toAdminRatingResponse(r model.Rating) AdminRatingResponse {
	return AdminRatingResponse{
		RatingID:      r.ID,
		Username:      r.User.Username,
		EquipmentName: r.Equipment.Name,
		Score:         r.Score,
		Comment:       r.Comment,
	}
}
