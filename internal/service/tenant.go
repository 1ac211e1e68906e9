package service

import (
	"context"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type tenantService struct {
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
}

func NewTenantService(tenantRepo repository.TenantRepository, propertyRepo repository.PropertyRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo, propertyRepo: propertyRepo}
}

func (s *tenantService) Get(ctx context.Context, cognitoID string) (*domain.Tenant, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	return s.withFavorites(ctx, t)
}

func (s *tenantService) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	if t.CognitoID == "" || t.Name == "" || t.Email == "" {
		return nil, fmt.Errorf("cognitoId, name and email are required: %w", domain.ErrInvalid)
	}
	if err := s.tenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tenantService) Update(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	if t.CognitoID == "" {
		return nil, fmt.Errorf("cognitoId is required: %w", domain.ErrInvalid)
	}
	if err := s.tenantRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.tenantRepo.GetByCognitoID(ctx, t.CognitoID)
}

func (s *tenantService) CurrentResidences(ctx context.Context, cognitoID string) ([]domain.Property, error) {
	if cognitoID == "" {
		return nil, fmt.Errorf("cognitoId is required: %w", domain.ErrInvalid)
	}
	return s.propertyRepo.ListByResident(ctx, cognitoID)
}

func (s *tenantService) AddFavorite(ctx context.Context, cognitoID string, propertyID int32) (*domain.Tenant, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.AddFavorite(ctx, cognitoID, propertyID); err != nil {
		return nil, err
	}
	return s.withFavorites(ctx, t)
}

func (s *tenantService) RemoveFavorite(ctx context.Context, cognitoID string, propertyID int32) (*domain.Tenant, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.RemoveFavorite(ctx, cognitoID, propertyID); err != nil {
		return nil, err
	}
	return s.withFavorites(ctx, t)
}

func (s *tenantService) withFavorites(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	favorites, err := s.propertyRepo.ListFavoritedBy(ctx, t.CognitoID)
	if err != nil {
		return nil, err
	}
	t.Favorites = favorites
	return t, nil
}
