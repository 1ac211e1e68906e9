package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"

	"github.com/lib/pq"
)

type leaseRepository struct {
	db *sql.DB
}

func NewLeaseRepository(db *sql.DB) repository.LeaseRepository {
	return &leaseRepository{db: db}
}

const leaseColumns = `id, start_date, end_date, rent, deposit, property_id, tenant_cognito_id`

// List returns all leases with the tenant and property nested.
func (r *leaseRepository) List(ctx context.Context) ([]domain.Lease, error) {
	query := `SELECT ls.id, ls.start_date, ls.end_date, ls.rent, ls.deposit, ls.property_id, ls.tenant_cognito_id,
	          ` + propertyColumns + `,
	          t.id, t.cognito_id, t.name, t.email, t.phone_number
	          FROM leases ls
	          JOIN properties p ON p.id = ls.property_id
	          JOIN locations l ON l.id = p.location_id
	          JOIN tenants t ON t.cognito_id = ls.tenant_cognito_id
	          ORDER BY ls.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []domain.Lease
	for rows.Next() {
		ls := domain.Lease{
			Property: &domain.Property{Location: &domain.Location{}},
			Tenant:   &domain.Tenant{},
		}
		p, t := ls.Property, ls.Tenant
		err := rows.Scan(
			&ls.ID, &ls.StartDate, &ls.EndDate, &ls.Rent, &ls.Deposit, &ls.PropertyID, &ls.TenantCognitoID,
			&p.ID, &p.Name, &p.Description, &p.PricePerMonth, &p.SecurityDeposit, &p.ApplicationFee,
			pq.Array(&p.PhotoURLs), pq.Array(&p.Amenities), pq.Array(&p.Highlights), &p.IsPetsAllowed, &p.IsParkingIncluded,
			&p.Beds, &p.Baths, &p.SquareFeet, &p.PropertyType, &p.PostedDate,
			&p.AverageRating, &p.NumberOfReviews, &p.LocationID, &p.ManagerCognitoID,
			&p.Location.ID, &p.Location.Address, &p.Location.City, &p.Location.State, &p.Location.Country, &p.Location.PostalCode,
			&p.Location.Coordinates.Longitude, &p.Location.Coordinates.Latitude, &p.Location.Geohash,
			&t.ID, &t.CognitoID, &t.Name, &t.Email, &t.PhoneNumber,
		)
		if err != nil {
			return nil, err
		}
		leases = append(leases, ls)
	}
	return leases, rows.Err()
}

func (r *leaseRepository) GetByID(ctx context.Context, id int32) (*domain.Lease, error) {
	ls := &domain.Lease{}
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ls.ID, &ls.StartDate, &ls.EndDate, &ls.Rent, &ls.Deposit, &ls.PropertyID, &ls.TenantCognitoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lease %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func (r *leaseRepository) GetLatestForTenantAndProperty(ctx context.Context, tenantCognitoID string, propertyID int32) (*domain.Lease, error) {
	ls := &domain.Lease{}
	query := `SELECT ` + leaseColumns + ` FROM leases
	          WHERE tenant_cognito_id = $1 AND property_id = $2
	          ORDER BY start_date DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, tenantCognitoID, propertyID).Scan(&ls.ID, &ls.StartDate, &ls.EndDate, &ls.Rent, &ls.Deposit, &ls.PropertyID, &ls.TenantCognitoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lease for tenant %s property %d: %w", tenantCognitoID, propertyID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return ls, nil
}
