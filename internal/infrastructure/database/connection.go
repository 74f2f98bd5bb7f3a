// Package database opens the relational backend when one is configured.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/config"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

// Connect opens a GORM connection for the configured driver and migrates
// the schema. Only "sqlite" and "mysql" reach this function; the memory
// driver never touches a database.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "itsupport.db"
		}
		dialector = sqlite.Open(path)
	case "mysql":
		dialector = mysql.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == "mysql" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.LogModel{},
		&models.SystemMetricModel{},
		&models.ChatMessageModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("database connection established", "driver", cfg.Driver)
	return db, nil
}
