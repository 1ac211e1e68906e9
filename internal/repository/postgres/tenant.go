package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (cognito_id, name, email, phone_number) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, t.CognitoID, t.Name, t.Email, t.PhoneNumber).Scan(&t.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("tenant %s already exists: %w", t.CognitoID, domain.ErrConflict)
	}
	return err
}

func (r *tenantRepository) GetByCognitoID(ctx context.Context, cognitoID string) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT id, cognito_id, name, email, phone_number FROM tenants WHERE cognito_id = $1`
	err := r.db.QueryRowContext(ctx, query, cognitoID).Scan(&t.ID, &t.CognitoID, &t.Name, &t.Email, &t.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tenant %s: %w", cognitoID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET name=$1, email=$2, phone_number=$3 WHERE cognito_id=$4`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Email, t.PhoneNumber, t.CognitoID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("tenant %s: %w", t.CognitoID, domain.ErrNotFound)
	}
	return nil
}

func (r *tenantRepository) AddFavorite(ctx context.Context, tenantCognitoID string, propertyID int32) error {
	query := `INSERT INTO tenant_favorites (tenant_cognito_id, property_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, tenantCognitoID, propertyID)
	if isUniqueViolation(err) {
		return fmt.Errorf("property %d already favorited by %s: %w", propertyID, tenantCognitoID, domain.ErrConflict)
	}
	return err
}

func (r *tenantRepository) RemoveFavorite(ctx context.Context, tenantCognitoID string, propertyID int32) error {
	query := `DELETE FROM tenant_favorites WHERE tenant_cognito_id = $1 AND property_id = $2`
	res, err := r.db.ExecContext(ctx, query, tenantCognitoID, propertyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("property %d not in favorites of %s: %w", propertyID, tenantCognitoID, domain.ErrNotFound)
	}
	return nil
}
