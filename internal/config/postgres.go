package config

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	connectAttempts = 5
	connectDelay    = 2 * time.Second
)

// NewPostgresDB opens the connection pool and probes reachability.
// The probe retries a few times and then gives up without failing
// startup: serverless Postgres may still be waking up, and the pool
// reconnects on first use.
func NewPostgresDB(cfg PostgresConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err := sqlDB.Ping(); err == nil {
			logger.Info("database connection established")
			return db, nil
		} else if attempt == connectAttempts {
			logger.Error("database unreachable, continuing without confirmed connection",
				zap.Int("attempts", connectAttempts), zap.Error(err))
		} else {
			logger.Warn("database not reachable yet, retrying",
				zap.Int("attempt", attempt), zap.Error(err))
			time.Sleep(connectDelay)
		}
	}
	return db, nil
}
