package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート
	PostgresSSLMode  string // disable/require

	JWTSecret string // 操作系APIのトークン検証用シークレット

	// 接続確立時のリトライ（業務オペレーションのリトライではない）
	DBConnectAttempts int
	DBConnectDelay    time.Duration

	// 売上/入荷金額の集計ウィンドウ（月数）
	ReportWindowMonths int
}

// Loadは環境変数（.envがあればそれも）から設定を組み立てる
func Load() (Config, error) {
	// .envが無いのは許容（本番は環境変数直渡し）
	_ = godotenv.Load()

	pgPort, err := atoiWithDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	attempts, err := atoiWithDefault("DB_CONNECT_ATTEMPTS", 5)
	if err != nil {
		return Config{}, err
	}
	delaySec, err := atoiWithDefault("DB_CONNECT_DELAY_SECONDS", 3)
	if err != nil {
		return Config{}, err
	}
	windowMonths, err := atoiWithDefault("REPORT_WINDOW_MONTHS", 6)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenvWithDefault("PORT", "8080"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenvWithDefault("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		DBConnectAttempts: attempts,
		DBConnectDelay:    time.Duration(delaySec) * time.Second,

		ReportWindowMonths: windowMonths,
	}

	//必須チェック
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	//範囲チェック
	if cfg.DBConnectAttempts < 1 {
		return Config{}, fmt.Errorf("DB_CONNECT_ATTEMPTS must be >= 1")
	}
	if delaySec < 0 {
		return Config{}, fmt.Errorf("DB_CONNECT_DELAY_SECONDS must be >= 0")
	}
	if cfg.ReportWindowMonths < 1 {
		return Config{}, fmt.Errorf("REPORT_WINDOW_MONTHS must be >= 1")
	}

	return cfg, nil
}

func getenvWithDefault(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiWithDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
