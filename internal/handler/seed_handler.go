package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/service"
)

// SeedHandler handles demo-catalog seeding.
type SeedHandler struct {
	equipmentService service.EquipmentService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(equipmentService service.EquipmentService) *SeedHandler {
	return &SeedHandler{equipmentService: equipmentService}
}

// SeedCatalogResponse represents the seed response.
type SeedCatalogResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// demoCatalog is the fixture inserted by the seed endpoint and the seed CLI.
var demoCatalog = []service.EquipmentCreate{
	{Name: "Cordless Drill", ModelNumber: "CD-18V", Quantity: 12, Status: "Available", Location: "Aisle 1", CategoryName: "Power Tools", SupplierName: "Makita"},
	{Name: "Angle Grinder", ModelNumber: "AG-750", Quantity: 8, Status: "Available", Location: "Aisle 1", CategoryName: "Power Tools", SupplierName: "Bosch"},
	{Name: "Scaffold Tower", ModelNumber: "ST-6M", Quantity: 3, Status: "Available", Location: "Yard", CategoryName: "Access", SupplierName: "Altrex"},
	{Name: "Pressure Washer", ModelNumber: "PW-140", Quantity: 5, Status: "Available", Location: "Aisle 3", CategoryName: "Cleaning", SupplierName: "Karcher"},
	{Name: "Generator 5kW", ModelNumber: "GEN-5000", Quantity: 4, Status: "Available", Location: "Yard", CategoryName: "Power", SupplierName: "Honda"},
	{Name: "Laser Level", ModelNumber: "LL-360", Quantity: 10, Status: "Available", Location: "Aisle 2", CategoryName: "Measuring", SupplierName: "Bosch"},
}

// SeedCatalog godoc
// @Summary Seed a demo catalog
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedCatalogResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/catalog [post]
func (h *SeedHandler) SeedCatalog(c echo.Context) error {
	count := 0
	for _, item := range demoCatalog {
		if _, err := h.equipmentService.Create(c.Request().Context(), item); err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		count++
	}

	return c.JSON(http.StatusOK, SeedCatalogResponse{
		Message: "demo catalog seeded",
		Count:   count,
	})
}

// DemoCatalog exposes the fixture for the seed CLI.
func DemoCatalog() []service.EquipmentCreate {
	return demoCatalog
}
