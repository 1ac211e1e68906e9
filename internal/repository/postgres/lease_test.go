package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var leaseTestColumns = []string{"id", "start_date", "end_date", "rent", "deposit", "property_id", "tenant_cognito_id"}

func TestLeaseRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLeaseRepository(db)
	ctx := context.Background()

	columns := append([]string{}, leaseTestColumns...)
	columns = append(columns, propertyTestColumns...)
	columns = append(columns, "t_id", "cognito_id", "t_name", "t_email", "t_phone_number")

	rows := sqlmock.NewRows(columns).AddRow(
		1, time.Now(), time.Now().AddDate(1, 0, 0), 1800.0, 3600.0, 1, "tenant-1",
		int32(1), "Sunny Loft", "Bright two-bedroom", 1800.0, 3600.0, 50.0,
		"{}", "{WasherDryer,WiFi}", "{GreatView}", true, false,
		int32(2), 1.5, int32(900), "Apartment", time.Now(),
		4.5, int32(12), int32(3), "mgr-1",
		int32(3), "12 Main St", "Springfield", "IL", "USA", "62704",
		-89.65, 39.78, "dp1k3m0rz",
		int32(2), "tenant-1", "Alex", "alex@example.com", "555-0100",
	)

	mock.ExpectQuery("FROM leases ls").
		WillReturnRows(rows)

	leases, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, leases, 1)
	assert.Equal(t, 1800.0, leases[0].Rent)
	assert.Equal(t, "Sunny Loft", leases[0].Property.Name)
	assert.Equal(t, "Alex", leases[0].Tenant.Name)
}

func TestLeaseRepository_GetLatestForTenantAndProperty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLeaseRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(leaseTestColumns).
			AddRow(3, time.Now(), time.Now().AddDate(1, 0, 0), 1800.0, 3600.0, 1, "tenant-1")

		mock.ExpectQuery("ORDER BY start_date DESC LIMIT 1").
			WithArgs("tenant-1", int32(1)).
			WillReturnRows(rows)

		lease, err := repo.GetLatestForTenantAndProperty(ctx, "tenant-1", 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), lease.ID)
	})

	t.Run("No lease is not found", func(t *testing.T) {
		mock.ExpectQuery("ORDER BY start_date DESC LIMIT 1").
			WithArgs("tenant-1", int32(2)).
			WillReturnError(sql.ErrNoRows)

		lease, err := repo.GetLatestForTenantAndProperty(ctx, "tenant-1", 2)
		assert.Nil(t, lease)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPaymentRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE payments SET payment_status").
		WithArgs(domain.PaymentStatusOverdue, domain.PaymentStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.MarkOverdue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPaymentRepository_ListByLease(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "amount_due", "amount_paid", "due_date", "payment_date", "payment_status", "lease_id"}).
		AddRow(1, 1800.0, 1800.0, time.Now(), time.Now(), "Paid", 3).
		AddRow(2, 1800.0, 0.0, time.Now(), time.Now(), "Pending", 3)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE lease_id = \\$1").
		WithArgs(int32(3)).
		WillReturnRows(rows)

	payments, err := repo.ListByLease(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, domain.PaymentStatusPending, payments[1].PaymentStatus)
}
