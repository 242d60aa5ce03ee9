package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"customer-lookup/internal/config"
	"customer-lookup/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

const devSeedCount = 25

// SeedDevCustomersIfEnabled populates the customers table with fake records
// for local development. Runs only when SEED_DEV_DATA=true and never in
// production.
func SeedDevCustomersIfEnabled(db *gorm.DB, cfg *config.Config) error {
	if os.Getenv("SEED_DEV_DATA") != "true" {
		return nil
	}

	if cfg.IsProduction() {
		log.Println("Refusing to seed dev data in production environment")
		return nil
	}

	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}

	if count > 0 {
		log.Printf("Customers table already has %d records, skipping dev seed", count)
		return nil
	}

	faker := gofakeit.New(0)
	customers := make([]models.Customer, 0, devSeedCount)
	for i := 0; i < devSeedCount; i++ {
		customers = append(customers, models.Customer{
			ID:        fmt.Sprintf("C%04d", i+1),
			Name:      faker.Name(),
			CreatedAt: faker.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()),
		})
	}

	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to seed dev customers: %w", err)
	}

	log.Printf("Seeded %d dev customers", len(customers))
	return nil
}
