package http

import (
	"context"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockPropertyService
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Search(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyService) Get(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyService) Create(ctx context.Context, in service.CreatePropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

// MockTenantService
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Get(ctx context.Context, cognitoID string) (*domain.Tenant, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) Update(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) CurrentResidences(ctx context.Context, cognitoID string) ([]domain.Property, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockTenantService) AddFavorite(ctx context.Context, cognitoID string, propertyID int32) (*domain.Tenant, error) {
	args := m.Called(ctx, cognitoID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) RemoveFavorite(ctx context.Context, cognitoID string, propertyID int32) (*domain.Tenant, error) {
	args := m.Called(ctx, cognitoID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

// MockManagerService
type MockManagerService struct {
	mock.Mock
}

func (m *MockManagerService) Get(ctx context.Context, cognitoID string) (*domain.Manager, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerService) Create(ctx context.Context, mgr *domain.Manager) (*domain.Manager, error) {
	args := m.Called(ctx, mgr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerService) Update(ctx context.Context, mgr *domain.Manager) (*domain.Manager, error) {
	args := m.Called(ctx, mgr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}

// MockApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, in service.SubmitApplicationInput) (*domain.Application, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) List(ctx context.Context, userID, userType string) ([]service.ApplicationView, error) {
	args := m.Called(ctx, userID, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ApplicationView), args.Error(1)
}
func (m *MockApplicationService) UpdateStatus(ctx context.Context, id int32, status string) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

// MockLeaseService
type MockLeaseService struct {
	mock.Mock
}

func (m *MockLeaseService) List(ctx context.Context) ([]service.LeaseView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.LeaseView), args.Error(1)
}
func (m *MockLeaseService) Payments(ctx context.Context, leaseID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
