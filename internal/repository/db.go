package repository

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arunpathak904/univaegis-assignment/internal/common"
	"github.com/arunpathak904/univaegis-assignment/internal/entity"
)

// Open connects to Postgres via gorm, tunes the underlying pool, and
// migrates the two tables this service owns.
func Open(cfg common.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	log.Info("connecting to database")
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		return nil, common.WrapError(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, common.WrapError(err, "unwrap sql.DB")
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&entity.Document{}, &entity.EligibilityCheck{}); err != nil {
		log.Error("auto-migration failed", "error", err)
		return nil, common.WrapError(err, "auto-migrate")
	}

	log.Info("successfully connected to database")
	return db, nil
}

// HealthCheck pings the underlying connection to catch DSN issues early.
func HealthCheck(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connections gracefully.
func Close(db *gorm.DB, log *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to unwrap sql.DB for close", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("failed to close database", "error", err)
		return
	}
	log.Info("database connections closed")
}
