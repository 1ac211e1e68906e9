package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type locationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) error {
	query := fmt.Sprintf(`INSERT INTO locations (address, city, state, country, postal_code, coordinates, geohash)
	          VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), %d), $8) RETURNING id`, domain.SRID)
	return r.db.QueryRowContext(ctx, query,
		loc.Address, loc.City, loc.State, loc.Country, loc.PostalCode,
		loc.Coordinates.Longitude, loc.Coordinates.Latitude, loc.Geohash,
	).Scan(&loc.ID)
}

func (r *locationRepository) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	loc := &domain.Location{}
	query := `SELECT id, address, city, state, country, postal_code,
	              ST_X(coordinates::geometry), ST_Y(coordinates::geometry), COALESCE(geohash, '')
	          FROM locations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loc.ID, &loc.Address, &loc.City, &loc.State, &loc.Country, &loc.PostalCode,
		&loc.Coordinates.Longitude, &loc.Coordinates.Latitude, &loc.Geohash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("location %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}
