package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy"
	"github.com/uptrace/bun"
)

type CityRepository interface {
	Create(ctx context.Context, city *models.City) error
	GetByID(ctx context.Context, id int64) (*models.City, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.City, error)
	Update(ctx context.Context, city *models.City) error
	Delete(ctx context.Context, id int64) error
}

type cityRepository struct {
	db *bun.DB
}

func NewCityRepository(db *bun.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *models.City) error {
	city.CreatedAt = time.Now()
	city.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(city).Exec(ctx)
	return err
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*models.City, error) {
	city := new(models.City)
	err := r.db.NewSelect().
		Model(city).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, economy.ErrNotFound("city", id)
		}
		slog.Error("Database error when getting city",
			slog.String("type", "db"),
			slog.String("operation", "GetByID"),
			slog.Int64("city_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	return city, nil
}

func (r *cityRepository) GetByUserID(ctx context.Context, userID string) ([]*models.City, error) {
	var cities []*models.City
	err := r.db.NewSelect().
		Model(&cities).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Scan(ctx)
	return cities, err
}

func (r *cityRepository) Update(ctx context.Context, city *models.City) error {
	city.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(city).
		WherePK().
		Exec(ctx)
	return err
}

func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.City)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
