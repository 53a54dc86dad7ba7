package memory

import (
	"context"
	"sort"
	"sync"

	"dog-breeds/internal/domain/favorites"
)

// favoritesRepo asigna ids secuenciales como lo haría una columna serial.
// Los ids borrados no se reutilizan.
type favoritesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]favorites.Favorite
}

func NewFavoritesRepo() favorites.Repository {
	return &favoritesRepo{
		byID: make(map[int64]favorites.Favorite),
	}
}

func (r *favoritesRepo) Create(ctx context.Context, f favorites.Favorite) (favorites.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f.ID = r.nextID
	r.byID[f.ID] = f
	return f, nil
}

func (r *favoritesRepo) List(ctx context.Context) ([]favorites.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]favorites.Favorite, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *favoritesRepo) GetByID(ctx context.Context, id int64) (favorites.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return favorites.Favorite{}, favorites.ErrNotFound
	}
	return f, nil
}

func (r *favoritesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return favorites.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
