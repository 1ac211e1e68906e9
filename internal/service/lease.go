package service

import (
	"context"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"
)

type leaseService struct {
	leaseRepo   repository.LeaseRepository
	paymentRepo repository.PaymentRepository
}

func NewLeaseService(leaseRepo repository.LeaseRepository, paymentRepo repository.PaymentRepository) LeaseService {
	return &leaseService{leaseRepo: leaseRepo, paymentRepo: paymentRepo}
}

func (s *leaseService) List(ctx context.Context) ([]LeaseView, error) {
	leases, err := s.leaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]LeaseView, 0, len(leases))
	for _, ls := range leases {
		views = append(views, LeaseView{
			Lease:           ls,
			NextPaymentDate: domain.NextPaymentDate(ls.StartDate, now),
		})
	}
	return views, nil
}

func (s *leaseService) Payments(ctx context.Context, leaseID int32) ([]domain.Payment, error) {
	if _, err := s.leaseRepo.GetByID(ctx, leaseID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByLease(ctx, leaseID)
}
