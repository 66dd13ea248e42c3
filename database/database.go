package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"greenloop/config"
	"greenloop/models"
)

// Connect ouvre la base (Postgres si DATABASE_URL est fourni, sinon SQLite
// local) et exécute les migrations.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	case dsn != "":
		// On suppose un DSN postgres même sans préfixe de schéma
		dialector = postgres.Open(dsn)
	default:
		dsn = "greenloop.db"
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	config.Logger().WithField("dsn", dsn).Info("DB connectée et migrée")
	return db, nil
}

// Migrate crée ou met à jour le schéma. Idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Emission{},
	)
}
