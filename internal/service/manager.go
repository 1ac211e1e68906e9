package service

import (
	"context"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type managerService struct {
	managerRepo repository.ManagerRepository
}

func NewManagerService(managerRepo repository.ManagerRepository) ManagerService {
	return &managerService{managerRepo: managerRepo}
}

func (s *managerService) Get(ctx context.Context, cognitoID string) (*domain.Manager, error) {
	return s.managerRepo.GetByCognitoID(ctx, cognitoID)
}

func (s *managerService) Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	if m.CognitoID == "" || m.Name == "" || m.Email == "" {
		return nil, fmt.Errorf("cognitoId, name and email are required: %w", domain.ErrInvalid)
	}
	if err := s.managerRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *managerService) Update(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	if m.CognitoID == "" {
		return nil, fmt.Errorf("cognitoId is required: %w", domain.ErrInvalid)
	}
	if err := s.managerRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.managerRepo.GetByCognitoID(ctx, m.CognitoID)
}
