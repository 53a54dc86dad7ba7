package upstream

import "context"

// Response es la respuesta opaca del catálogo externo. El body se reenvía
// tal cual, nunca se parsea.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Catalog es el catálogo externo de razas. Un error significa fallo de
// transporte; un status no-2xx viene en Response.
type Catalog interface {
	ListBreeds(ctx context.Context) (Response, error)
	GetBreed(ctx context.Context, id int) (Response, error)
	SearchBreeds(ctx context.Context, name string) (Response, error)
	BreedImages(ctx context.Context, breedID int) (Response, error)
}
