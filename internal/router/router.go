package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rentaldesk/internal/auth"
	"rentaldesk/internal/config"
	apperrors "rentaldesk/internal/errors"
	"rentaldesk/internal/handler"
	"rentaldesk/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	equipmentHandler *handler.EquipmentHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	ratingHandler *handler.RatingHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded equipment images
	e.Static("/images", cfg.UploadDir)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/users/new", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/equipment/view", equipmentHandler.PublicList)
	api.GET("/rating/:id", ratingHandler.ListForEquipment)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// User routes
	secured.GET("/users/view", userHandler.ListUsers, RequireAdmin)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	// Equipment routes
	secured.GET("/equipment", equipmentHandler.List)
	secured.GET("/equipment/:id", equipmentHandler.Get)
	secured.POST("/equipment/new", equipmentHandler.Create, RequireAdmin)
	secured.PUT("/equipment/:id", equipmentHandler.Update)
	secured.DELETE("/equipment/:id", equipmentHandler.Delete, RequireAdmin)

	// Cart routes
	secured.POST("/cart/new", cartHandler.AddToCart)
	secured.GET("/cart/view", cartHandler.ViewCart)
	secured.POST("/cart/remove-item", cartHandler.RemoveItem)
	secured.DELETE("/cart/delete/:cartId", cartHandler.DeleteLine)

	// Order routes
	secured.POST("/order/new", orderHandler.PlaceOrder)
	secured.GET("/orders/view", orderHandler.ListOrders)

	// Rating routes
	secured.POST("/rating/new", ratingHandler.AddRating)
	secured.GET("/ratings/view", ratingHandler.ListAll, RequireAdmin)

	// Seed route
	secured.POST("/seed/catalog", seedHandler.SeedCatalog, RequireAdmin)
}

// RequireAdmin rejects requests whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "admins only",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
