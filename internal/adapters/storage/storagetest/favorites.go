// Package storagetest contiene el contrato compartido que cumplen todos los
// repositorios de favoritos.
package storagetest

import (
	"context"
	"testing"
	"time"

	"dog-breeds/internal/domain/favorites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunFavoritesRepo ejecuta el contrato contra repos frescos creados por newRepo.
func RunFavoritesRepo(t *testing.T, newRepo func(t *testing.T) favorites.Repository) {
	t.Helper()

	t.Run("create assigns increasing ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a, err := repo.Create(ctx, favorites.Favorite{BreedName: "Beagle", CreatedAt: time.Now()})
		require.NoError(t, err)
		b, err := repo.Create(ctx, favorites.Favorite{BreedName: "Pug", CreatedAt: time.Now()})
		require.NoError(t, err)

		assert.Positive(t, a.ID)
		assert.Greater(t, b.ID, a.ID)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		for _, name := range []string{"Akita", "Boxer", "Collie"} {
			_, err := repo.Create(ctx, favorites.Favorite{BreedName: name, CreatedAt: time.Now()})
			require.NoError(t, err)
		}

		items, err = repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Akita", items[0].BreedName)
		assert.Equal(t, "Collie", items[2].BreedName)
		assert.Less(t, items[0].ID, items[1].ID)
		assert.Less(t, items[1].ID, items[2].ID)
	})

	t.Run("optional fields round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		breedID := int64(226)
		created, err := repo.Create(ctx, favorites.Favorite{
			BreedName: "Siberian Husky",
			BreedID:   &breedID,
			ImageURL:  "https://cdn2.thedogapi.com/images/S17ZilqNm.jpg",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Siberian Husky", got.BreedName)
		require.NotNil(t, got.BreedID)
		assert.Equal(t, breedID, *got.BreedID)
		assert.Equal(t, "https://cdn2.thedogapi.com/images/S17ZilqNm.jpg", got.ImageURL)

		bare, err := repo.Create(ctx, favorites.Favorite{CreatedAt: time.Now()})
		require.NoError(t, err)
		got, err = repo.GetByID(ctx, bare.ID)
		require.NoError(t, err)
		assert.Nil(t, got.BreedID)
		assert.Empty(t, got.BreedName)
		assert.Empty(t, got.ImageURL)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, favorites.ErrNotFound)

		err = repo.Delete(ctx, 404)
		assert.ErrorIs(t, err, favorites.ErrNotFound)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a, err := repo.Create(ctx, favorites.Favorite{BreedName: "Beagle", CreatedAt: time.Now()})
		require.NoError(t, err)
		b, err := repo.Create(ctx, favorites.Favorite{BreedName: "Pug", CreatedAt: time.Now()})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, a.ID))
		assert.ErrorIs(t, repo.Delete(ctx, a.ID), favorites.ErrNotFound)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, b.ID, items[0].ID)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a, err := repo.Create(ctx, favorites.Favorite{BreedName: "Beagle", CreatedAt: time.Now()})
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, a.ID))

		b, err := repo.Create(ctx, favorites.Favorite{BreedName: "Beagle", CreatedAt: time.Now()})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}
