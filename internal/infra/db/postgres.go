package db

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// 接続確立に失敗し、リトライも使い切った。
// 業務エラーとは別物で、セッションにとっては致命的。
var ErrStoreUnavailable = errors.New("store unavailable")

// Connect はリトライ付きでDBに接続して *gorm.DB を返す。
// リトライは接続確立時のみ。業務オペレーションは再試行しない。
func Connect(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)

	var lastErr error
	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info("database connected",
				zap.String("host", cfg.PostgresHost),
				zap.Int("port", cfg.PostgresPort),
				zap.Int("attempt", attempt),
			)
			return gormDB, nil
		}

		lastErr = err
		log.Warn("database connection failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.DBConnectAttempts),
			zap.Error(err),
		)

		if attempt < cfg.DBConnectAttempts {
			time.Sleep(cfg.DBConnectDelay)
		}
	}

	return nil, fmt.Errorf("%w: %d attempts exhausted: %v", ErrStoreUnavailable, cfg.DBConnectAttempts, lastErr)
}
