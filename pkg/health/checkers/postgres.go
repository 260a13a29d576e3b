package checkers

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChecker pings the pool and makes sure the goose schema is at
// least at the version this binary was built with.
type PostgresChecker struct {
	pool          *pgxpool.Pool
	schemaVersion int64
}

func NewPostgresChecker(pool *pgxpool.Pool, schemaVersion int64) *PostgresChecker {
	return &PostgresChecker{pool: pool, schemaVersion: schemaVersion}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := c.pool.Ping(ctx); err != nil {
		return err
	}
	if c.schemaVersion <= 0 {
		return nil
	}
	var applied int64
	err := c.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version WHERE is_applied`,
	).Scan(&applied)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if applied < c.schemaVersion {
		return fmt.Errorf("schema version %d, want %d", applied, c.schemaVersion)
	}
	return nil
}
