package database

import (
	"fmt"

	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured sales store
func Open(cfg *config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(cfg.SQLiteDSN())
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(log)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "postgres" {
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetMaxOpenConns(10)
	} else {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	log.WithField("driver", dialector.Name()).Info("connected to sales store")
	return db, nil
}

// AutoMigrate creates the clients, produits and ventes tables with their
// foreign keys. Running it on an initialized store changes nothing.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Client{},
		&entity.Product{},
		&entity.Sale{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func gormLogLevel(log *logrus.Logger) logger.LogLevel {
	switch {
	case log.IsLevelEnabled(logrus.DebugLevel):
		return logger.Info
	case log.IsLevelEnabled(logrus.WarnLevel):
		return logger.Warn
	default:
		return logger.Error
	}
}
