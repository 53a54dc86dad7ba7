package favorites

import "time"

// Favorite es una raza guardada por el usuario. La raza del catálogo externo
// no se modela localmente; BreedID sólo es una referencia opaca.
type Favorite struct {
	ID int64 // asignado por el store al insertar

	BreedName string
	BreedID   *int64
	ImageURL  string

	CreatedAt time.Time
}
