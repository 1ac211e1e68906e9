package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"

	"github.com/lib/pq"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `p.id, p.name, COALESCE(p.description, ''), p.price_per_month, p.security_deposit, p.application_fee,
	p.photo_urls, p.amenities, p.highlights, p.is_pets_allowed, p.is_parking_included,
	p.beds, p.baths, p.square_feet, p.property_type, p.posted_date,
	COALESCE(p.average_rating, 0), COALESCE(p.number_of_reviews, 0), p.location_id, p.manager_cognito_id,
	l.id, l.address, l.city, l.state, l.country, l.postal_code,
	ST_X(l.coordinates::geometry), ST_Y(l.coordinates::geometry), COALESCE(l.geohash, '')`

const propertyFrom = ` FROM properties p JOIN locations l ON l.id = p.location_id`

func scanProperty(row interface{ Scan(...any) error }) (*domain.Property, error) {
	p := &domain.Property{Location: &domain.Location{}}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PricePerMonth, &p.SecurityDeposit, &p.ApplicationFee,
		pq.Array(&p.PhotoURLs), pq.Array(&p.Amenities), pq.Array(&p.Highlights), &p.IsPetsAllowed, &p.IsParkingIncluded,
		&p.Beds, &p.Baths, &p.SquareFeet, &p.PropertyType, &p.PostedDate,
		&p.AverageRating, &p.NumberOfReviews, &p.LocationID, &p.ManagerCognitoID,
		&p.Location.ID, &p.Location.Address, &p.Location.City, &p.Location.State, &p.Location.Country, &p.Location.PostalCode,
		&p.Location.Coordinates.Longitude, &p.Location.Coordinates.Latitude, &p.Location.Geohash,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (name, description, price_per_month, security_deposit, application_fee,
	              photo_urls, amenities, highlights, is_pets_allowed, is_parking_included,
	              beds, baths, square_feet, property_type, posted_date, location_id, manager_cognito_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.PricePerMonth, p.SecurityDeposit, p.ApplicationFee,
		pq.Array(p.PhotoURLs), pq.Array(p.Amenities), pq.Array(p.Highlights), p.IsPetsAllowed, p.IsParkingIncluded,
		p.Beds, p.Baths, p.SquareFeet, p.PropertyType, time.Now(), p.LocationID, p.ManagerCognitoID,
	).Scan(&p.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + propertyFrom + ` WHERE p.id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("property %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Search composes the conjunctive filter predicate. Every unset filter field
// is a no-op; with nothing set the query returns all properties.
func (r *propertyRepository) Search(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error) {
	var conds []string
	var args []interface{}
	argIdx := 1

	if f.FavoriteIDs != nil {
		// An empty set matches nothing: ANY('{}') is always false.
		conds = append(conds, fmt.Sprintf("p.id = ANY($%d)", argIdx))
		args = append(args, pq.Array(f.FavoriteIDs))
		argIdx++
	}
	if f.PriceMin != nil {
		conds = append(conds, fmt.Sprintf("p.price_per_month >= $%d", argIdx))
		args = append(args, *f.PriceMin)
		argIdx++
	}
	if f.PriceMax != nil {
		conds = append(conds, fmt.Sprintf("p.price_per_month <= $%d", argIdx))
		args = append(args, *f.PriceMax)
		argIdx++
	}
	if f.Beds != nil {
		conds = append(conds, fmt.Sprintf("p.beds >= $%d", argIdx))
		args = append(args, *f.Beds)
		argIdx++
	}
	if f.Baths != nil {
		conds = append(conds, fmt.Sprintf("p.baths >= $%d", argIdx))
		args = append(args, *f.Baths)
		argIdx++
	}
	if f.SquareFeetMin != nil {
		conds = append(conds, fmt.Sprintf("p.square_feet >= $%d", argIdx))
		args = append(args, *f.SquareFeetMin)
		argIdx++
	}
	if f.SquareFeetMax != nil {
		conds = append(conds, fmt.Sprintf("p.square_feet <= $%d", argIdx))
		args = append(args, *f.SquareFeetMax)
		argIdx++
	}
	if f.PropertyType != "" {
		conds = append(conds, fmt.Sprintf("p.property_type = $%d", argIdx))
		args = append(args, f.PropertyType)
		argIdx++
	}
	if len(f.Amenities) > 0 {
		// Property's amenity set must contain every requested amenity.
		conds = append(conds, fmt.Sprintf("p.amenities @> $%d", argIdx))
		args = append(args, pq.Array(f.Amenities))
		argIdx++
	}
	if f.AvailableFrom != nil {
		conds = append(conds, fmt.Sprintf(`EXISTS (SELECT 1 FROM leases ls WHERE ls.property_id = p.id AND ls.start_date <= $%d)`, argIdx))
		args = append(args, *f.AvailableFrom)
		argIdx++
	}
	if f.HasPoint() {
		conds = append(conds, fmt.Sprintf("ST_DWithin(l.coordinates::geometry, ST_SetSRID(ST_MakePoint($%d, $%d), %d), $%d)", argIdx, argIdx+1, domain.SRID, argIdx+2))
		args = append(args, *f.Longitude, *f.Latitude, domain.SearchRadiusKm/domain.KmPerDegree)
		argIdx += 3
	}

	query := `SELECT ` + propertyColumns + propertyFrom
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *propertyRepository) ListByResident(ctx context.Context, tenantCognitoID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + propertyFrom + `
	          JOIN property_residents pr ON pr.property_id = p.id
	          WHERE pr.tenant_cognito_id = $1 ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, query, tenantCognitoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *propertyRepository) ListFavoritedBy(ctx context.Context, tenantCognitoID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + propertyFrom + `
	          JOIN tenant_favorites tf ON tf.property_id = p.id
	          WHERE tf.tenant_cognito_id = $1 ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, query, tenantCognitoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func collectProperties(rows *sql.Rows) ([]domain.Property, error) {
	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}
