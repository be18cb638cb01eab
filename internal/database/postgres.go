package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

const (
	connectAttempts = 15
	maxBackoff      = 10 * time.Second
)

// NewPostgres connects to PostgreSQL, retrying with exponential backoff while
// the database comes up.
func NewPostgres(dsn string, logLevel string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	utils.Log.Info("Attempting to connect to database...")

	for i := 1; i <= connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(ParseLogLevel(logLevel)),
		})

		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					utils.Log.Info("Database connected", zap.Int("attempt", i))
					return db, nil
				}
			} else {
				err = dbErr
			}
		}

		utils.Log.Warn("Database connection attempt failed", zap.Int("attempt", i), zap.Error(err))

		// 1, 2, 4, 8 seconds... capped
		wait := backoff(i)
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
}

func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<uint(attempt-1)) * time.Second
	if wait > maxBackoff || wait <= 0 {
		wait = maxBackoff
	}
	return wait
}

// ParseLogLevel maps the DB_LOG_LEVEL setting onto gorm's levels. Unknown
// values fall back to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// AutoMigrateTables creates or updates the tables of the given models
func AutoMigrateTables(db *gorm.DB, models ...interface{}) error {
	utils.Log.Info("Running database migrations...")

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	utils.Log.Info("Database migrations completed")
	return nil
}

// Migrate brings the kitchen schema up to date. Ingredients and recipes go
// first so the requirement table can reference both with ON DELETE CASCADE.
func Migrate(db *gorm.DB) error {
	return AutoMigrateTables(db,
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	)
}
