package repository

import (
	"context"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Search(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)

	// Resident set (tenants currently occupying a property).
	ListByResident(ctx context.Context, tenantCognitoID string) ([]domain.Property, error)

	// Favorites relation.
	ListFavoritedBy(ctx context.Context, tenantCognitoID string) ([]domain.Property, error)
}

type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) error
	GetByID(ctx context.Context, id int32) (*domain.Location, error)
}

type TenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) error
	GetByCognitoID(ctx context.Context, cognitoID string) (*domain.Tenant, error)
	Update(ctx context.Context, t *domain.Tenant) error

	AddFavorite(ctx context.Context, tenantCognitoID string, propertyID int32) error
	RemoveFavorite(ctx context.Context, tenantCognitoID string, propertyID int32) error
}

type ManagerRepository interface {
	Create(ctx context.Context, m *domain.Manager) error
	GetByCognitoID(ctx context.Context, cognitoID string) (*domain.Manager, error)
	Update(ctx context.Context, m *domain.Manager) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	ListByTenant(ctx context.Context, tenantCognitoID string) ([]domain.Application, error)
	ListByManager(ctx context.Context, managerCognitoID string) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error

	// Approve atomically flips the application from Pending to Approved,
	// creates the lease, adds the tenant to the property's resident set and
	// links the lease to the application. Returns domain.ErrConflict when the
	// application is no longer Pending.
	Approve(ctx context.Context, id int32, lease *domain.Lease) error
}

type LeaseRepository interface {
	List(ctx context.Context) ([]domain.Lease, error)
	GetByID(ctx context.Context, id int32) (*domain.Lease, error)
	// GetLatestForTenantAndProperty returns the lease with the latest start
	// date for the tenant/property pair, or domain.ErrNotFound.
	GetLatestForTenantAndProperty(ctx context.Context, tenantCognitoID string, propertyID int32) (*domain.Lease, error)
}

type PaymentRepository interface {
	ListByLease(ctx context.Context, leaseID int32) ([]domain.Payment, error)
	MarkOverdue(ctx context.Context) (int64, error)
}
