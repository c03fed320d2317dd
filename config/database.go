package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/cosmic-travel-api/models"
)

var Database *gorm.DB

// Dialector picks the gorm driver for a connection string. Postgres URIs go
// to the postgres driver; anything else is a sqlite path.
func Dialector(uri string) gorm.Dialector {
	if strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://") {
		return postgres.Open(uri)
	}

	return sqlite.Open(SQLitePath(uri))
}

// SQLitePath strips the sqlite:/// scheme used by older deployments
func SQLitePath(uri string) string {
	for _, prefix := range []string{"sqlite:///", "sqlite://"} {
		if strings.HasPrefix(uri, prefix) {
			return strings.TrimPrefix(uri, prefix)
		}
	}

	return uri
}

// gormLogger writes SQL traces through zerolog; they only show at debug level
func gormLogger() logger.Interface {
	level := logger.Warn
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}

	return logger.New(&log.Logger, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Open connects to the store and migrates the schema
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return db, nil
}

// Connect opens the store named by uri and installs it as Database
func Connect(uri string) error {
	db, err := Open(Dialector(uri))
	if err != nil {
		return err
	}

	Database = db
	log.Info().Str("dialect", db.Dialector.Name()).Msg("Database connected")

	return nil
}
