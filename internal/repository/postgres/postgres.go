package postgres

import (
	"database/sql"

	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PropertyRepository
	repository.LocationRepository
	repository.TenantRepository
	repository.ManagerRepository
	repository.ApplicationRepository
	repository.LeaseRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		PropertyRepository:    NewPropertyRepository(db),
		LocationRepository:    NewLocationRepository(db),
		TenantRepository:      NewTenantRepository(db),
		ManagerRepository:     NewManagerRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		LeaseRepository:       NewLeaseRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique_violation,
// which the repositories translate to domain.ErrConflict.
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
