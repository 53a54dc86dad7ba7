package favorites

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando el id no existe.
var ErrNotFound = errors.New("favorite not found")

type Repository interface {
	// Create inserta y devuelve la entidad con el id generado.
	Create(ctx context.Context, f Favorite) (Favorite, error)
	// List devuelve todo ordenado por id ascendente.
	List(ctx context.Context) ([]Favorite, error)
	GetByID(ctx context.Context, id int64) (Favorite, error)
	Delete(ctx context.Context, id int64) error
}
