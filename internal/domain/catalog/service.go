package catalog

import (
	"context"
	"fmt"

	"dog-breeds/internal/platform/apperror"
	"dog-breeds/internal/ports/upstream"
)

// Breed es el payload opaco del upstream listo para reenviar.
type Breed struct {
	ContentType string
	Body        []byte
}

// Service aplica la política de status sobre el catálogo externo:
//   - List reenvía el status del upstream cuando no es 2xx.
//   - Get, Search e Images colapsan cualquier no-2xx a 404.
//   - Un fallo de transporte es siempre KindUpstreamUnavailable.
type Service struct {
	upstream upstream.Catalog
}

func NewService(up upstream.Catalog) *Service {
	return &Service{upstream: up}
}

func (s *Service) List(ctx context.Context) (Breed, error) {
	const op = "catalog.List"

	res, err := s.upstream.ListBreeds(ctx)
	if err != nil {
		return Breed{}, apperror.E(op, apperror.KindUpstreamUnavailable, err)
	}
	if !res.OK() {
		return Breed{}, apperror.UpstreamStatus(op, res.StatusCode)
	}
	return toBreed(res), nil
}

func (s *Service) Get(ctx context.Context, id int) (Breed, error) {
	res, err := s.upstream.GetBreed(ctx, id)
	return collapse("catalog.Get", res, err)
}

func (s *Service) Search(ctx context.Context, name string) (Breed, error) {
	res, err := s.upstream.SearchBreeds(ctx, name)
	return collapse("catalog.Search", res, err)
}

func (s *Service) Images(ctx context.Context, breedID int) (Breed, error) {
	res, err := s.upstream.BreedImages(ctx, breedID)
	return collapse("catalog.Images", res, err)
}

func collapse(op string, res upstream.Response, err error) (Breed, error) {
	if err != nil {
		return Breed{}, apperror.E(op, apperror.KindUpstreamUnavailable, err)
	}
	if !res.OK() {
		return Breed{}, apperror.NotFound(op, fmt.Errorf("upstream status %d", res.StatusCode))
	}
	return toBreed(res), nil
}

func toBreed(res upstream.Response) Breed {
	ct := res.ContentType
	if ct == "" {
		ct = "application/json"
	}
	return Breed{ContentType: ct, Body: res.Body}
}
