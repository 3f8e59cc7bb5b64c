package models

import (
	"time"

	"gorm.io/gorm"
)

// UnitConfig maps a factory unit to its workbook links. Position fixes the
// iteration order used by the cross-unit summary.
type UnitConfig struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"unique;not null"`
	DashboardURL string         `json:"dashboard_url"` // direct download link used by the service
	ExcelURL     string         `json:"excel_url"`     // original workbook location, reference only
	Position     int            `json:"position" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// DefaultUnitConfigs is the fallback mapping used when the config store is
// unreachable or empty. The links are the known-good shared downloads, so a
// store outage still serves data.
func DefaultUnitConfigs() []UnitConfig {
	return []UnitConfig{
		{
			Name:         "ARASIKERE",
			DashboardURL: "https://arvindgroup-my.sharepoint.com/:x:/g/personal/gedshirts_consultant_arvind_in/IQDTVZTVcdtOR7ybfN3eIpoIAWe7c7bBJCchZmw2vZNKgqs?e=ghJlMW&download=1",
			Position:     1,
		},
		{
			Name:         "RANCHI",
			DashboardURL: "https://arvindgroup-my.sharepoint.com/:x:/g/personal/gedshirts_consultant_arvind_in/IQCkdQtFfWX-Q7TFJS4LEm2vAfbJShQrsi48PbatXXJ03Ms?e=eskvlI&download=1",
			Position:     2,
		},
		{
			Name:         "INDORE",
			DashboardURL: "https://arvindgroup-my.sharepoint.com/:x:/g/personal/gedshirts_consultant_arvind_in/IQCMvYuFTGY5SYl-VS7Fg70AATSU9eGqXevKDKSLc2V-3aI?e=CtZ4A5&download=1",
			Position:     3,
		},
		{
			Name:         "MATODA",
			DashboardURL: "https://arvindgroup-my.sharepoint.com/:x:/g/personal/gedshirts_consultant_arvind_in/IQAPWXjEjFzBSa2tKsCIgXHeAZnDDmdiKwRv4tx15FrsyRM?e=su0DUf&download=1",
			Position:     4,
		},
	}
}
