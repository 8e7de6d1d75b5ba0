package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-sitekit/internal/menus"
	"github.com/goliatone/go-sitekit/internal/pages"
	"github.com/goliatone/go-sitekit/internal/runtimeconfig"
)

// Open builds a bun database handle for the configured driver. The caller
// owns the handle and is responsible for closing it; repositories receive it
// by injection and never manage connection lifecycle themselves.
func Open(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	switch cfg.Driver {
	case runtimeconfig.DriverSQLite:
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case runtimeconfig.DriverPostgres:
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		_ = sqlDB.Close()
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}
}

// EnsureSchema creates the page and menu tables when they do not exist.
// DDL is derived from the bun models so both supported dialects stay in sync.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*pages.Page)(nil),
		(*pages.PageContent)(nil),
		(*menus.MenuItem)(nil),
		(*menus.MenuContent)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
