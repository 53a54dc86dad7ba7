// Package storage elige el adapter de favoritos según la configuración.
package storage

import (
	"context"
	"fmt"

	mem "dog-breeds/internal/adapters/storage/memory"
	pg "dog-breeds/internal/adapters/storage/postgres"
	"dog-breeds/internal/adapters/storage/sqlite"
	"dog-breeds/internal/config"
	"dog-breeds/internal/domain/favorites"
	"dog-breeds/internal/platform/logger"
)

type Store struct {
	Favorites favorites.Repository
	Driver    string

	migrate func(ctx context.Context) error
	close   func() error
}

// Open construye el store. Sin connection string (o con driver memory) se usa
// el map en memoria; si hay DSN y la base no abre, devuelve error.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}

	if !cfg.Configured() || cfg.Driver == config.DriverMemory {
		log.Info("favorites store: memory", nil)
		return &Store{
			Favorites: mem.NewFavoritesRepo(),
			Driver:    config.DriverMemory,
			migrate:   func(context.Context) error { return nil },
			close:     func() error { return nil },
		}, nil
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.URL)
		if err != nil {
			return nil, err
		}
		log.Info("favorites store: sqlite", nil)
		return &Store{
			Favorites: sqlite.NewFavoritesRepo(db),
			Driver:    config.DriverSQLite,
			migrate:   func(context.Context) error { return sqlite.Migrate(db) },
			close:     db.Close,
		}, nil

	case config.DriverPostgres:
		sqlDB, err := pg.Open(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		gdb, err := pg.OpenGorm(sqlDB, cfg.LogLevel)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		repo := pg.NewFavoritesRepo(gdb)
		log.Info("favorites store: postgres", nil)
		return &Store{
			Favorites: repo,
			Driver:    config.DriverPostgres,
			migrate:   repo.Migrate,
			close:     sqlDB.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Migrate aplica el esquema del driver activo (no-op en memoria).
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("migrate %s: %w", s.Driver, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.close()
}
