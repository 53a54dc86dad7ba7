package favorites

import (
	"context"
	"errors"
	"time"

	"dog-breeds/internal/platform/apperror"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	BreedName string
	BreedID   *int64
	ImageURL  string
}

// Create no valida: los campos descriptivos se guardan tal cual llegan.
func (s *Service) Create(ctx context.Context, in CreateInput) (Favorite, error) {
	f := Favorite{
		BreedName: in.BreedName,
		BreedID:   in.BreedID,
		ImageURL:  in.ImageURL,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, f)
	if err != nil {
		return Favorite{}, apperror.E("favorites.Create", apperror.KindPersistence, err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Favorite, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.E("favorites.List", apperror.KindPersistence, err)
	}
	if items == nil {
		items = []Favorite{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Favorite, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Favorite{}, classify("favorites.GetByID", err)
	}
	return f, nil
}

// Delete busca primero y después borra; un id inexistente es NotFound, no
// un fallo de persistencia.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "favorites.Delete"

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return classify(op, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return classify(op, err)
	}
	return nil
}

func classify(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperror.NotFound(op, err)
	}
	return apperror.E(op, apperror.KindPersistence, err)
}
