package service

import (
	"context"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Search(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListByResident(ctx context.Context, tenantCognitoID string) ([]domain.Property, error) {
	args := m.Called(ctx, tenantCognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListFavoritedBy(ctx context.Context, tenantCognitoID string) ([]domain.Property, error) {
	args := m.Called(ctx, tenantCognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

// MockLocationRepo
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) Create(ctx context.Context, loc *domain.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}
func (m *MockLocationRepo) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTenantRepo) GetByCognitoID(ctx context.Context, cognitoID string) (*domain.Tenant, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) Update(ctx context.Context, t *domain.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTenantRepo) AddFavorite(ctx context.Context, tenantCognitoID string, propertyID int32) error {
	args := m.Called(ctx, tenantCognitoID, propertyID)
	return args.Error(0)
}
func (m *MockTenantRepo) RemoveFavorite(ctx context.Context, tenantCognitoID string, propertyID int32) error {
	args := m.Called(ctx, tenantCognitoID, propertyID)
	return args.Error(0)
}

// MockManagerRepo
type MockManagerRepo struct {
	mock.Mock
}

func (m *MockManagerRepo) Create(ctx context.Context, mgr *domain.Manager) error {
	args := m.Called(ctx, mgr)
	return args.Error(0)
}
func (m *MockManagerRepo) GetByCognitoID(ctx context.Context, cognitoID string) (*domain.Manager, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerRepo) Update(ctx context.Context, mgr *domain.Manager) error {
	args := m.Called(ctx, mgr)
	return args.Error(0)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByTenant(ctx context.Context, tenantCognitoID string) ([]domain.Application, error) {
	args := m.Called(ctx, tenantCognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByManager(ctx context.Context, managerCognitoID string) ([]domain.Application, error) {
	args := m.Called(ctx, managerCognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockApplicationRepo) Approve(ctx context.Context, id int32, lease *domain.Lease) error {
	args := m.Called(ctx, id, lease)
	return args.Error(0)
}

// MockLeaseRepo
type MockLeaseRepo struct {
	mock.Mock
}

func (m *MockLeaseRepo) List(ctx context.Context) ([]domain.Lease, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lease), args.Error(1)
}
func (m *MockLeaseRepo) GetByID(ctx context.Context, id int32) (*domain.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}
func (m *MockLeaseRepo) GetLatestForTenantAndProperty(ctx context.Context, tenantCognitoID string, propertyID int32) (*domain.Lease, error) {
	args := m.Called(ctx, tenantCognitoID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) ListByLease(ctx context.Context, leaseID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkOverdue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockGeocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address, city, country, postalCode string) (domain.Coordinates, error) {
	args := m.Called(ctx, address, city, country, postalCode)
	return args.Get(0).(domain.Coordinates), args.Error(1)
}
