package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"dog-breeds/internal/domain/favorites"

	"github.com/jmoiron/sqlx"
)

type favoriteRow struct {
	ID        int64         `db:"id"`
	BreedName string        `db:"breed_name"`
	BreedID   sql.NullInt64 `db:"breed_id"`
	ImageURL  string        `db:"image_url"`
}

type FavoritesRepo struct {
	db *sqlx.DB
}

var _ favorites.Repository = (*FavoritesRepo)(nil)

func NewFavoritesRepo(db *sqlx.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func (r *FavoritesRepo) Create(ctx context.Context, f favorites.Favorite) (favorites.Favorite, error) {
	var breedID sql.NullInt64
	if f.BreedID != nil {
		breedID = sql.NullInt64{Int64: *f.BreedID, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (breed_name, breed_id, image_url, created_at)
		VALUES (?, ?, ?, ?)
	`, f.BreedName, breedID, f.ImageURL, f.CreatedAt.UTC())
	if err != nil {
		return favorites.Favorite{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return favorites.Favorite{}, err
	}
	f.ID = id
	return f, nil
}

func (r *FavoritesRepo) List(ctx context.Context) ([]favorites.Favorite, error) {
	var rows []favoriteRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, breed_name, breed_id, image_url
		FROM favorites
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}

	out := make([]favorites.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toFavorite())
	}
	return out, nil
}

func (r *FavoritesRepo) GetByID(ctx context.Context, id int64) (favorites.Favorite, error) {
	var row favoriteRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, breed_name, breed_id, image_url
		FROM favorites
		WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return favorites.Favorite{}, favorites.ErrNotFound
		}
		return favorites.Favorite{}, err
	}
	return row.toFavorite(), nil
}

func (r *FavoritesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return favorites.ErrNotFound
	}
	return nil
}

func (row favoriteRow) toFavorite() favorites.Favorite {
	f := favorites.Favorite{
		ID:        row.ID,
		BreedName: row.BreedName,
		ImageURL:  row.ImageURL,
	}
	if row.BreedID.Valid {
		v := row.BreedID.Int64
		f.BreedID = &v
	}
	return f
}
