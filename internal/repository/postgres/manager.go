package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type managerRepository struct {
	db *sql.DB
}

func NewManagerRepository(db *sql.DB) repository.ManagerRepository {
	return &managerRepository{db: db}
}

func (r *managerRepository) Create(ctx context.Context, m *domain.Manager) error {
	query := `INSERT INTO managers (cognito_id, name, email, phone_number) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, m.CognitoID, m.Name, m.Email, m.PhoneNumber).Scan(&m.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("manager %s already exists: %w", m.CognitoID, domain.ErrConflict)
	}
	return err
}

func (r *managerRepository) GetByCognitoID(ctx context.Context, cognitoID string) (*domain.Manager, error) {
	m := &domain.Manager{}
	query := `SELECT id, cognito_id, name, email, phone_number FROM managers WHERE cognito_id = $1`
	err := r.db.QueryRowContext(ctx, query, cognitoID).Scan(&m.ID, &m.CognitoID, &m.Name, &m.Email, &m.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("manager %s: %w", cognitoID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *managerRepository) Update(ctx context.Context, m *domain.Manager) error {
	query := `UPDATE managers SET name=$1, email=$2, phone_number=$3 WHERE cognito_id=$4`
	res, err := r.db.ExecContext(ctx, query, m.Name, m.Email, m.PhoneNumber, m.CognitoID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("manager %s: %w", m.CognitoID, domain.ErrNotFound)
	}
	return nil
}
