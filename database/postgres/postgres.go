package postgres

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const DriverName = "postgres"

// Created on startup so a fresh catalog database can serve chat traffic.
// Catalog tables are owned by the catalog itself and are never created here.
var chatSchema = []string{
	`CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		content TEXT NOT NULL,
		is_user BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		id BIGSERIAL PRIMARY KEY,
		content TEXT NOT NULL UNIQUE,
		usage_count INTEGER NOT NULL DEFAULT 0
	)`,
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func FormatDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "catalog"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func New() (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverName, FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func EnsureChatTables(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range chatSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare chat tables: %w", err)
		}
	}
	return nil
}
