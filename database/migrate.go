package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ascent-cms/models"
)

// Models lists every table owned by the content service
func Models() []interface{} {
	return []interface{}{
		&models.Milestone{},
		&models.HeroStat{},
		&models.Client{},
		&models.PricingPackage{},
		&models.TeamMember{},
		&models.Partnership{},
		&models.ContactInfo{},
		&models.SiteSetting{},
	}
}

// Migrate creates or updates the content tables
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database schema migrated", zap.Int("tables", len(Models())))
	return nil
}
