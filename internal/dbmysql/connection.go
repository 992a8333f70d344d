package dbmysql

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pds/internal/config"
	"pds/internal/logger"
)

// NewMySQL returns a GORM DB instance connected to MySQL
func NewMySQL(cnf *config.Config, log *logger.Logger) (*gorm.DB, func(), error) {
	dsn := cnf.DSN()
	if cnf.Database.DatabaseName == "" {
		return nil, nil, fmt.Errorf("MYSQL_DATABASE is not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      gormlogger.Default.LogMode(gormLogLevel(cnf.Logging.Level)),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("connected to MySQL", "host", cnf.Database.Host, "database", cnf.Database.DatabaseName)

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("closing MySQL pool failed", "error", err)
		}
	}
	return db, cleanup, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Content{}, &Bill{}, &Cost{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return gormlogger.Info
	case "warn", "warning":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
