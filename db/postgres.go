package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

var ErrNotConfigured = errors.New("connection URL not configured")

// Connect opens the submission ledger database. Callers treat ErrNotConfigured
// as "ledger disabled".
func Connect(ctx context.Context, connStr string) error {
	if connStr == "" {
		return ErrNotConfigured
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.PingContext(ctx)
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
