package postgres

import (
	"context"
	"errors"
	"time"

	"dog-breeds/internal/domain/favorites"

	"gorm.io/gorm"
)

// favoriteRow es el mapeo gorm de la tabla favorites. El esquema lo genera
// AutoMigrate.
type favoriteRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	BreedName string    `gorm:"not null;default:''"`
	BreedID   *int64    `gorm:"index"`
	ImageURL  string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (favoriteRow) TableName() string { return "favorites" }

type FavoritesRepo struct {
	db *gorm.DB
}

var _ favorites.Repository = (*FavoritesRepo)(nil)

func NewFavoritesRepo(db *gorm.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

// Migrate crea/ajusta la tabla favorites.
func (r *FavoritesRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&favoriteRow{})
}

func (r *FavoritesRepo) Create(ctx context.Context, f favorites.Favorite) (favorites.Favorite, error) {
	row := favoriteRow{
		BreedName: f.BreedName,
		BreedID:   f.BreedID,
		ImageURL:  f.ImageURL,
		CreatedAt: f.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return favorites.Favorite{}, err
	}
	return toFavorite(row), nil
}

func (r *FavoritesRepo) List(ctx context.Context) ([]favorites.Favorite, error) {
	var rows []favoriteRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]favorites.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, toFavorite(row))
	}
	return out, nil
}

func (r *FavoritesRepo) GetByID(ctx context.Context, id int64) (favorites.Favorite, error) {
	var row favoriteRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return favorites.Favorite{}, favorites.ErrNotFound
		}
		return favorites.Favorite{}, err
	}
	return toFavorite(row), nil
}

func (r *FavoritesRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&favoriteRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return favorites.ErrNotFound
	}
	return nil
}

func toFavorite(row favoriteRow) favorites.Favorite {
	return favorites.Favorite{
		ID:        row.ID,
		BreedName: row.BreedName,
		BreedID:   row.BreedID,
		ImageURL:  row.ImageURL,
		CreatedAt: row.CreatedAt,
	}
}
