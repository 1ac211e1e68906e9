package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLeaseService_List(t *testing.T) {
	ctx := context.Background()

	leaseRepo := new(MockLeaseRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewLeaseService(leaseRepo, paymentRepo)

	start := time.Now().AddDate(0, -3, 0)
	leaseRepo.On("List", ctx).Return([]domain.Lease{
		{ID: 1, StartDate: start, Rent: 1800},
	}, nil)

	views, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.True(t, views[0].NextPaymentDate.After(time.Now()))
	assert.False(t, views[0].NextPaymentDate.After(time.Now().AddDate(0, 1, 1)))
}

func TestLeaseService_Payments(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		leaseRepo := new(MockLeaseRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := NewLeaseService(leaseRepo, paymentRepo)

		leaseRepo.On("GetByID", ctx, int32(3)).Return(&domain.Lease{ID: 3}, nil)
		paymentRepo.On("ListByLease", ctx, int32(3)).Return([]domain.Payment{{ID: 1, LeaseID: 3}}, nil)

		payments, err := svc.Payments(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("Unknown lease is not found", func(t *testing.T) {
		leaseRepo := new(MockLeaseRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := NewLeaseService(leaseRepo, paymentRepo)

		leaseRepo.On("GetByID", ctx, int32(404)).Return(nil, fmt.Errorf("lease 404: %w", domain.ErrNotFound))

		payments, err := svc.Payments(ctx, 404)
		assert.Nil(t, payments)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		paymentRepo.AssertNotCalled(t, "ListByLease", mock.Anything, mock.Anything)
	})
}
