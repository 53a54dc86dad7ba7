package postgres

import (
	"context"
	"os"
	"testing"

	"dog-breeds/internal/adapters/storage/storagetest"
	"dog-breeds/internal/domain/favorites"

	"github.com/stretchr/testify/require"
)

// Requiere un Postgres real: TEST_DATABASE_URL=postgres://... go test ./...
func TestFavoritesRepo_Contract(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}

	sqlDB, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := OpenGorm(sqlDB, "silent")
	require.NoError(t, err)

	storagetest.RunFavoritesRepo(t, func(t *testing.T) favorites.Repository {
		repo := NewFavoritesRepo(gdb)
		require.NoError(t, repo.Migrate(context.Background()))
		require.NoError(t, gdb.Exec(`TRUNCATE favorites RESTART IDENTITY`).Error)
		return repo
	})
}

func TestGormLogger_DefaultsToWarn(t *testing.T) {
	require.NotNil(t, gormLogger(""))
	require.NotNil(t, gormLogger("INFO"))
}
