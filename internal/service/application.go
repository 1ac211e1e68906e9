package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/logger"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	propertyRepo    repository.PropertyRepository
	tenantRepo      repository.TenantRepository
	leaseRepo       repository.LeaseRepository
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	leaseRepo repository.LeaseRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		tenantRepo:      tenantRepo,
		leaseRepo:       leaseRepo,
	}
}

// Submit creates a Pending application. The lease is created only at
// approval; an application carries no lease until then.
func (s *applicationService) Submit(ctx context.Context, in SubmitApplicationInput) (*domain.Application, error) {
	if in.PropertyID == 0 || in.TenantCognitoID == "" {
		return nil, fmt.Errorf("propertyId and tenantCognitoId are required: %w", domain.ErrInvalid)
	}

	status := domain.ApplicationStatus(in.Status)
	if in.Status == "" {
		status = domain.ApplicationStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown application status %q: %w", in.Status, domain.ErrInvalid)
	}

	if _, err := s.propertyRepo.GetByID(ctx, in.PropertyID); err != nil {
		return nil, err
	}
	if _, err := s.tenantRepo.GetByCognitoID(ctx, in.TenantCognitoID); err != nil {
		return nil, err
	}

	app := &domain.Application{
		ApplicationDate: time.Now(),
		Status:          status,
		PropertyID:      in.PropertyID,
		TenantCognitoID: in.TenantCognitoID,
		Name:            in.Name,
		Email:           in.Email,
		PhoneNumber:     in.PhoneNumber,
		Message:         in.Message,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		logger.Error("Failed to create application", "op", "SubmitApplication", "property_id", in.PropertyID, "tenant", in.TenantCognitoID, "error", err)
		return nil, err
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, userID, userType string) ([]ApplicationView, error) {
	if userID == "" || userType == "" {
		return nil, fmt.Errorf("userId and userType are required: %w", domain.ErrInvalid)
	}

	var apps []domain.Application
	var err error
	switch userType {
	case "tenant":
		apps, err = s.applicationRepo.ListByTenant(ctx, userID)
	case "manager":
		apps, err = s.applicationRepo.ListByManager(ctx, userID)
	default:
		return nil, fmt.Errorf("unknown userType %q: %w", userType, domain.ErrInvalid)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]ApplicationView, 0, len(apps))
	for _, app := range apps {
		view := ApplicationView{Application: app}
		lease, err := s.leaseRepo.GetLatestForTenantAndProperty(ctx, app.TenantCognitoID, app.PropertyID)
		switch {
		case err == nil:
			view.Lease = &LeaseView{
				Lease:           *lease,
				NextPaymentDate: domain.NextPaymentDate(lease.StartDate, now),
			}
		case errors.Is(err, domain.ErrNotFound):
			// No lease yet; the view serializes lease as explicit null.
		default:
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int32, status string) (*domain.Application, error) {
	newStatus := domain.ApplicationStatus(status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("unknown application status %q: %w", status, domain.ErrInvalid)
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.ApplicationStatusApproved {
		property, err := s.propertyRepo.GetByID(ctx, app.PropertyID)
		if err != nil {
			return nil, err
		}
		lease := domain.NewLeaseFromProperty(property, app.TenantCognitoID, time.Now())
		if err := s.applicationRepo.Approve(ctx, id, lease); err != nil {
			logger.Error("Failed to approve application", "op", "UpdateApplicationStatus", "application_id", id, "error", err)
			return nil, err
		}
		app.Status = newStatus
		app.LeaseID = &lease.ID
		return app, nil
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	app.Status = newStatus
	return app, nil
}
