package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/config"
)

// NewConnection opens a PostgreSQL connection pool.
func NewConnection(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Ping verifies the database connection.
func Ping(ctx context.Context, db *sqlx.DB) error {
	return db.PingContext(ctx)
}
