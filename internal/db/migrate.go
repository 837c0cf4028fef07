package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/diewo77/invoice-studio/internal/config"
	"github.com/diewo77/invoice-studio/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 5

// Connect opens the export journal database and migrates it.
// Postgres connections are retried to give a container time to start.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := NormalizeDSN(cfg.DSN)
	driver := DetectDriver(dsn)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	switch driver {
	case DriverPostgres:
		log.Printf("[DB] Using postgres DSN: %s", MaskDSN(dsn))
		for i := 0; i < connectAttempts; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), gcfg)
			if err == nil {
				break
			}
			log.Printf("[DB] Attempt %d/%d failed, retrying: %v", i+1, connectAttempts, err)
			time.Sleep(2 * time.Second)
		}
	default:
		path := dsn
		if path == "" {
			path = cfg.SQLitePath
		}
		log.Printf("[DB] Using sqlite file: %s", path)
		conn, err = gorm.Open(sqlite.Open(path), gcfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate runs AutoMigrate for the journal tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.Export{}); err != nil {
		return fmt.Errorf("automigrate %T: %w", &models.Export{}, err)
	}
	return nil
}
