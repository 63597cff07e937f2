package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/service"
)

// EquipmentHandler handles catalog endpoints.
type EquipmentHandler struct {
	equipmentService service.EquipmentService
	uploadDir        string
}

// NewEquipmentHandler creates a new equipment handler.
func NewEquipmentHandler(equipmentService service.EquipmentService, uploadDir string) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		uploadDir:        uploadDir,
	}
}

// EquipmentResponse is a catalog entry with category and supplier flattened.
type EquipmentResponse struct {
	EquipmentID  uint            `json:"equipment_id"`
	Name         string          `json:"equipment_name"`
	ImagePath    string          `json:"equipment_img"`
	Rating       decimal.Decimal `json:"rating"`
	ModelNumber  string          `json:"model_number"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
	Quantity     int             `json:"quantity"`
	Status       string          `json:"status"`
	Location     string          `json:"location"`
	CategoryName string          `json:"category_name"`
	SupplierName string          `json:"supplier_name"`
}

// UpdateEquipmentRequest represents a partial equipment update.
type UpdateEquipmentRequest struct {
	Name        *string `json:"equipment_name"`
	ModelNumber *string `json:"model_number"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=0"`
	Status      *string `json:"status" validate:"omitempty,oneof='Available' 'Out of Stock' 'In Use'"`
	Location    *string `json:"location"`
}

func toEquipmentResponse(e *model.Equipment) EquipmentResponse {
	return EquipmentResponse{
		EquipmentID:  e.ID,
		Name:         e.Name,
		ImagePath:    e.ImagePath,
		Rating:       e.Rating,
		ModelNumber:  e.ModelNumber,
		PurchaseDate: e.PurchaseDate,
		Quantity:     e.Quantity,
		Status:       e.Status,
		Location:     e.Location,
		CategoryName: e.Category.Name,
		SupplierName: e.Supplier.Name,
	}
}

// List godoc
// @Summary List all equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /equipment [get]
func (h *EquipmentHandler) List(c echo.Context) error {
	items, err := h.equipmentService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "no equipment found",
			Code:  "EQUIPMENT_NOT_FOUND",
		})
	}

	responses := make([]EquipmentResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toEquipmentResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "List of all equipment",
		"equipment": responses,
	})
}

// PublicList godoc
// @Summary List the catalog without authentication
// @Tags equipment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /equipment/view [get]
func (h *EquipmentHandler) PublicList(c echo.Context) error {
	items, err := h.equipmentService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	responses := make([]EquipmentResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toEquipmentResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "List of all equipment",
		"equipment": responses,
	})
}

// Get godoc
// @Summary Get equipment by id
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 200 {object} EquipmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment ID")
	}

	equipment, err := h.equipmentService.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toEquipmentResponse(equipment))
}

// Create godoc
// @Summary Create an equipment entry
// @Tags equipment
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param equipment_name formData string true "Name"
// @Param model_number formData string false "Model number"
// @Param rating formData number false "Initial rating"
// @Param purchase_date formData string false "Purchase date (YYYY-MM-DD)"
// @Param quantity formData int true "Stock quantity"
// @Param status formData string true "Status"
// @Param location formData string false "Location"
// @Param category_name formData string true "Category name"
// @Param supplier_name formData string true "Supplier name"
// @Param equipment_img formData file false "Image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /equipment/new [post]
func (h *EquipmentHandler) Create(c echo.Context) error {
	name := c.FormValue("equipment_name")
	quantityStr := c.FormValue("quantity")
	status := c.FormValue("status")
	categoryName := c.FormValue("category_name")
	supplierName := c.FormValue("supplier_name")

	if name == "" || quantityStr == "" || status == "" || categoryName == "" || supplierName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "missing required fields: equipment_name, quantity, status, category_name, supplier_name",
			Code:  "MISSING_FIELDS",
		})
	}

	quantity, err := strconv.Atoi(quantityStr)
	if err != nil || quantity < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "quantity must be a non-negative integer",
			Code:  "INVALID_QUANTITY",
		})
	}

	input := service.EquipmentCreate{
		Name:         name,
		ModelNumber:  c.FormValue("model_number"),
		Quantity:     quantity,
		Status:       status,
		Location:     c.FormValue("location"),
		CategoryName: categoryName,
		SupplierName: supplierName,
	}

	if ratingStr := c.FormValue("rating"); ratingStr != "" {
		rating, err := decimal.NewFromString(ratingStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid rating",
				Code:  "INVALID_RATING",
			})
		}
		input.Rating = &rating
	}

	if dateStr := c.FormValue("purchase_date"); dateStr != "" {
		purchaseDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid purchase_date, expected YYYY-MM-DD",
				Code:  "INVALID_DATE",
			})
		}
		input.PurchaseDate = &purchaseDate
	}

	if file, err := c.FormFile("equipment_img"); err == nil {
		imagePath, err := h.saveImage(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to store image",
				Code:  "IMAGE_STORE_FAILED",
			})
		}
		input.ImagePath = imagePath
	}

	equipment, err := h.equipmentService.Create(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Equipment created successfully.",
		"equipment": toEquipmentResponse(equipment),
	})
}

// Update godoc
// @Summary Update equipment fields
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Param request body UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment ID")
	}

	var req UpdateEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	equipment, err := h.equipmentService.Update(c.Request().Context(), uint(id), service.EquipmentUpdate{
		Name:        req.Name,
		ModelNumber: req.ModelNumber,
		Quantity:    req.Quantity,
		Status:      req.Status,
		Location:    req.Location,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Equipment updated successfully.",
		"equipment": toEquipmentResponse(equipment),
	})
}

// Delete godoc
// @Summary Delete an equipment entry
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment ID")
	}

	if err := h.equipmentService.Delete(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Equipment deleted successfully.",
	})
}

// saveImage writes the uploaded file under the upload directory with a
// collision-proof name and returns the public path stored on the record.
func (h *EquipmentHandler) saveImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/images/" + name, nil
}
