package repository

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cutting_report/internal/models"
)

type ConfigRepository interface {
	GetAll() ([]models.UnitConfig, error)
	Load() []models.UnitConfig
	Save(configs []models.UnitConfig) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) GetAll() ([]models.UnitConfig, error) {
	var configs []models.UnitConfig
	err := r.db.Order("position asc").Find(&configs).Error
	return configs, err
}

// Load returns the unit mapping, falling back to the built-in defaults when
// the store is unreachable or empty. Rendering never blocks on the store.
func (r *configRepository) Load() []models.UnitConfig {
	configs, err := r.GetAll()
	if err != nil {
		log.Printf("Warning: using default unit config (store error: %v)", err)
		return models.DefaultUnitConfigs()
	}
	if len(configs) == 0 {
		return models.DefaultUnitConfigs()
	}
	return configs
}

// Save upserts the unit mapping by name. Best effort; the caller logs and
// moves on if it fails.
func (r *configRepository) Save(configs []models.UnitConfig) error {
	if len(configs) == 0 {
		return nil
	}
	for i := range configs {
		configs[i].Position = i + 1
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"dashboard_url", "excel_url", "position", "updated_at"}),
	}).Create(&configs).Error
}
