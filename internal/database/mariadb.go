// Package database provides connection setup for MariaDB and Redis and runs
// schema migrations. Connections are created once at startup and shared via
// dependency injection; this package owns their lifecycle.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// MariaDB driver -- imported for side effect of registering the driver.
	_ "github.com/go-sql-driver/mysql"

	"github.com/keyxmakerx/moodwell/internal/config"
)

// pingPolicy controls how long startup waits for the database to come up.
type pingPolicy struct {
	attempts   int
	backoff    time.Duration
	maxBackoff time.Duration
	timeout    time.Duration
}

var defaultPingPolicy = pingPolicy{
	attempts:   10,
	backoff:    time.Second,
	maxBackoff: 30 * time.Second,
	timeout:    5 * time.Second,
}

// NewMariaDB opens a MariaDB connection pool configured from cfg and waits
// until the server answers a ping.
func NewMariaDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening mariadb connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := waitForDB(ctx, db, defaultPingPolicy); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// waitForDB pings db with exponential backoff. MariaDB is often still
// starting when the app container launches under Docker Compose.
func waitForDB(ctx context.Context, db *sql.DB, p pingPolicy) error {
	backoff := p.backoff
	var pingErr error

	for attempt := 1; attempt <= p.attempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
		pingErr = db.PingContext(pingCtx)
		cancel()

		if pingErr == nil {
			return nil
		}
		if attempt == p.attempts {
			break
		}

		slog.Warn("mariadb not ready, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", p.attempts),
			slog.Duration("backoff", backoff),
			slog.Any("error", pingErr),
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for mariadb: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, p.maxBackoff)
	}

	return fmt.Errorf("pinging mariadb after %d attempts: %w", p.attempts, pingErr)
}
