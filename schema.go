package weetools

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormmysql "gorm.io/driver/mysql"
	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	gormsqlserver "gorm.io/driver/sqlserver"
)

// Model is an embeddable base type carrying the default key conventions:
// a UUID string primary key plus created/updated timestamps.
type Model struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DefaultConfig returns the gorm configuration used by Open: silent logger,
// default snake_case plural naming.
func DefaultConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

// Open opens a GORM DB for the given driver and DSN using DefaultConfig.
// Supported drivers: postgres, mysql, sqlite, sqlserver (plus common
// aliases, see normalizeDriver).
func Open(driver, dsn string) (*gorm.DB, error) {
	switch normalizeDriver(driver) {
	case "postgres":
		return gorm.Open(gormpg.Open(dsn), DefaultConfig())
	case "mysql":
		return gorm.Open(gormmysql.Open(dsn), DefaultConfig())
	case "sqlite":
		return gorm.Open(gormsqlite.Open(dsn), DefaultConfig())
	case "sqlserver":
		return gorm.Open(gormsqlserver.Open(dsn), DefaultConfig())
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}
}
