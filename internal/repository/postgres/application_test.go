package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{
		Status:          domain.ApplicationStatusPending,
		PropertyID:      1,
		TenantCognitoID: "tenant-1",
		Name:            "Alex",
		Email:           "alex@example.com",
	}

	mock.ExpectQuery("INSERT INTO applications").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, app)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), app.ID)
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "application_date", "status", "property_id", "tenant_cognito_id", "name", "email", "phone_number", "message", "lease_id"}).
			AddRow(7, time.Now(), "Pending", 1, "tenant-1", "Alex", "alex@example.com", "", "", nil)

		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id = \\$1").
			WithArgs(int32(7)).
			WillReturnRows(rows)

		app, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Nil(t, app.LeaseID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id = \\$1").
			WithArgs(int32(404)).
			WillReturnError(sql.ErrNoRows)

		app, err := repo.GetByID(ctx, 404)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusDenied, int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 7, domain.ApplicationStatusDenied)
		assert.NoError(t, err)
	})

	t.Run("Missing application", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusDenied, int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 404, domain.ApplicationStatusDenied)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationRepository_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	newLease := func() *domain.Lease {
		now := time.Now()
		return &domain.Lease{
			StartDate:       now,
			EndDate:         now.AddDate(0, 0, domain.DefaultLeaseTermDays),
			Rent:            1800,
			Deposit:         3600,
			PropertyID:      1,
			TenantCognitoID: "tenant-1",
		}
	}

	t.Run("Success commits status flip, lease, resident and link", func(t *testing.T) {
		lease := newLease()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusApproved, int32(7), domain.ApplicationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO leases").
			WithArgs(lease.StartDate, lease.EndDate, lease.Rent, lease.Deposit, lease.PropertyID, lease.TenantCognitoID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
		mock.ExpectExec("INSERT INTO property_residents").
			WithArgs(lease.PropertyID, lease.TenantCognitoID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE applications SET lease_id").
			WithArgs(int32(99), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Approve(ctx, 7, lease)
		assert.NoError(t, err)
		assert.Equal(t, int32(99), lease.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-pending application is a conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusApproved, int32(7), domain.ApplicationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Approve(ctx, 7, newLease())
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure after the lease insert rolls everything back", func(t *testing.T) {
		lease := newLease()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE applications SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO leases").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
		mock.ExpectExec("INSERT INTO property_residents").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Approve(ctx, 7, lease)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
