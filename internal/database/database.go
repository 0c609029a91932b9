package database

import (
	"fmt"
	"time"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Dialector выбирает gorm-диалект по имени драйвера
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open подключается к БД и проверяет соединение
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.Server.Env == "development" {
		logLevel = gormlogger.Info
	}

	start := time.Now()
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		logger.DBLog("connect", cfg.Database.Driver, time.Since(start), err)
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.DBLog("ping", cfg.Database.Driver, time.Since(start), err)
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	// sqlite in-memory живет только в одном соединении
	if cfg.Database.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	logger.DBLog("connect", cfg.Database.Driver, time.Since(start), nil)
	return db, nil
}
