package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) ListByLease(ctx context.Context, leaseID int32) ([]domain.Payment, error) {
	query := `SELECT id, amount_due, amount_paid, due_date, payment_date, payment_status, lease_id
	          FROM payments WHERE lease_id = $1 ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query, leaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.AmountDue, &p.AmountPaid, &p.DueDate, &p.PaymentDate, &p.PaymentStatus, &p.LeaseID); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// MarkOverdue flips pending payments past their due date to Overdue and
// returns how many rows changed.
func (r *paymentRepository) MarkOverdue(ctx context.Context) (int64, error) {
	query := `UPDATE payments SET payment_status = $1 WHERE payment_status = $2 AND due_date < $3`
	res, err := r.db.ExecContext(ctx, query, domain.PaymentStatusOverdue, domain.PaymentStatusPending, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
