package migrations

import (
	"log"

	"gorm.io/gorm"

	"cutting_report/internal/models"
	"cutting_report/internal/repository"
)

// RunMigrations migrates the schema and seeds the default unit links.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UnitConfig{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultUnits(db); err != nil {
		log.Printf("Warning: Failed to seed default unit config: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedDefaultUnits writes the fallback unit mapping on first boot so the
// admin panel has rows to edit. An already-populated table is left alone.
func seedDefaultUnits(db *gorm.DB) error {
	configRepo := repository.NewConfigRepository(db)

	existing, err := configRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Unit config already present, skipping seed")
		return nil
	}

	log.Println("Seeding default unit config...")
	return configRepo.Save(models.DefaultUnitConfigs())
}
