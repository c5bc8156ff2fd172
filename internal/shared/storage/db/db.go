package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
)

// Options controls database pool and connectivity behavior.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// DefaultServerOptions returns defaults for long-running server processes.
func DefaultServerOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxIdleTime: 2 * time.Minute,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	}
}

// DefaultMigrateOptions returns defaults for short-lived CLI migrations.
func DefaultMigrateOptions() Options {
	return Options{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxIdleTime: 2 * time.Minute,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	}
}

// OptionsFromEnv overrides defaults with DB_* env vars if present.
func OptionsFromEnv(defaults Options) Options {
	opts := defaults
	if v, ok := readEnvInt("DB_MAX_OPEN_CONNS"); ok {
		opts.MaxOpenConns = v
	}
	if v, ok := readEnvInt("DB_MAX_IDLE_CONNS"); ok {
		opts.MaxIdleConns = v
	}
	if v, ok := readEnvSeconds("DB_CONN_MAX_LIFETIME_S"); ok {
		opts.ConnMaxLifetime = v
	}
	if v, ok := readEnvSeconds("DB_CONN_MAX_IDLE_S"); ok {
		opts.ConnMaxIdleTime = v
	}
	return opts
}

// Connect opens a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("db: database url is empty")
	}
	database, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}
	database.SetMaxOpenConns(opts.MaxOpenConns)
	database.SetMaxIdleConns(opts.MaxIdleConns)
	database.SetConnMaxLifetime(opts.ConnMaxLifetime)
	database.SetConnMaxIdleTime(opts.ConnMaxIdleTime)

	pingCtx := ctx
	if opts.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.PingTimeout)
		defer cancel()
	}
	if err := database.PingContext(pingCtx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("db: ping: %w", err)
	}
	return database, nil
}

func readEnvInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("db: invalid %s=%q, ignoring", key, raw)
		return 0, false
	}
	return v, true
}

func readEnvSeconds(key string) (time.Duration, bool) {
	v, ok := readEnvInt(key)
	if !ok {
		return 0, false
	}
	return time.Duration(v) * time.Second, true
}
