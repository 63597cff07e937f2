package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentaldesk/internal/config"
	"rentaldesk/internal/db"
	"rentaldesk/internal/handler"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
	"rentaldesk/internal/service"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@rentaldesk.local"
	adminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Supplier{},
		&model.Equipment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	equipmentService := service.NewEquipmentService(
		repository.NewEquipmentRepository(gormDB),
		repository.NewCategoryRepository(gormDB),
		repository.NewSupplierRepository(gormDB),
	)

	seeded := 0
	for _, item := range handler.DemoCatalog() {
		if _, err := equipmentService.Create(ctx, item); err != nil {
			log.Fatalf("Failed to seed equipment %q: %v", item.Name, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user: %s / %s", adminEmail, adminPassword)
	log.Printf("  - Equipment entries created: %d", seeded)
}

// seedAdmin creates the admin user unless one with the seed email exists.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		log.Println("Admin user already present, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return err
	}
	return repo.Create(ctx, &model.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
}
