package main

import (
	"log"
	"net/http"
	"os"

	_ "rentaldesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rentaldesk/internal/auth"
	"rentaldesk/internal/cache"
	"rentaldesk/internal/config"
	"rentaldesk/internal/db"
	"rentaldesk/internal/handler"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
	"rentaldesk/internal/router"
	"rentaldesk/internal/service"
)

// @title Equipment Rental API
// @version 1.0
// @description Equipment rental management API with catalog, cart reservations, orders, ratings and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Rating{},
			&model.OrderLine{},
			&model.Order{},
			&model.CartLine{},
			&model.Equipment{},
			&model.Supplier{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Supplier{},
		&model.Equipment{},
		&model.CartLine{},
		&model.Order{},
		&model.OrderLine{},
		&model.Rating{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	equipmentRepo := repository.NewEquipmentRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	supplierRepo := repository.NewSupplierRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, categoryRepo, supplierRepo)
	cartService := service.NewCartService(cartRepo, equipmentRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, ratingRepo)
	ratingService := service.NewRatingService(ratingRepo, equipmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService, cfg.UploadDir)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	seedHandler := handler.NewSeedHandler(equipmentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		equipmentHandler,
		cartHandler,
		orderHandler,
		ratingHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
