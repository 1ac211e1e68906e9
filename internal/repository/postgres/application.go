package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (application_date, status, property_id, tenant_cognito_id, name, email, phone_number, message, lease_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		time.Now(), app.Status, app.PropertyID, app.TenantCognitoID,
		app.Name, app.Email, app.PhoneNumber, app.Message, app.LeaseID,
	).Scan(&app.ID)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, application_date, status, property_id, tenant_cognito_id, name, email, phone_number, message, lease_id
	          FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.ApplicationDate, &app.Status, &app.PropertyID, &app.TenantCognitoID,
		&app.Name, &app.Email, &app.PhoneNumber, &app.Message, &app.LeaseID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("application %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

const applicationListColumns = `a.id, a.application_date, a.status, a.property_id, a.tenant_cognito_id,
	a.name, a.email, a.phone_number, a.message, a.lease_id,
	` + propertyColumns + `,
	t.id, t.cognito_id, t.name, t.email, t.phone_number`

const applicationListFrom = ` FROM applications a
	JOIN properties p ON p.id = a.property_id
	JOIN locations l ON l.id = p.location_id
	JOIN tenants t ON t.cognito_id = a.tenant_cognito_id`

func (r *applicationRepository) ListByTenant(ctx context.Context, tenantCognitoID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationListColumns + applicationListFrom + ` WHERE a.tenant_cognito_id = $1 ORDER BY a.id`
	return r.list(ctx, query, tenantCognitoID)
}

func (r *applicationRepository) ListByManager(ctx context.Context, managerCognitoID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationListColumns + applicationListFrom + ` WHERE p.manager_cognito_id = $1 ORDER BY a.id`
	return r.list(ctx, query, managerCognitoID)
}

func (r *applicationRepository) list(ctx context.Context, query string, arg interface{}) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app := domain.Application{
			Property: &domain.Property{Location: &domain.Location{}},
			Tenant:   &domain.Tenant{},
		}
		p, t := app.Property, app.Tenant
		err := rows.Scan(
			&app.ID, &app.ApplicationDate, &app.Status, &app.PropertyID, &app.TenantCognitoID,
			&app.Name, &app.Email, &app.PhoneNumber, &app.Message, &app.LeaseID,
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
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("application %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Approve runs the whole approval as one transaction: the status flip is
// conditional on the current status still being Pending, so two concurrent
// approvals of the same application create at most one lease.
func (r *applicationRepository) Approve(ctx context.Context, id int32, lease *domain.Lease) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 AND status = $3`,
		domain.ApplicationStatusApproved, id, domain.ApplicationStatusPending)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("application %d is not pending: %w", id, domain.ErrConflict)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO leases (start_date, end_date, rent, deposit, property_id, tenant_cognito_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		lease.StartDate, lease.EndDate, lease.Rent, lease.Deposit, lease.PropertyID, lease.TenantCognitoID,
	).Scan(&lease.ID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO property_residents (property_id, tenant_cognito_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		lease.PropertyID, lease.TenantCognitoID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE applications SET lease_id = $1 WHERE id = $2`, lease.ID, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}
