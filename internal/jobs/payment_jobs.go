package jobs

import (
	"context"

	"github.com/Milkwastaken07/DEHA-Rental/internal/logger"
)

// MarkOverduePayments flips Pending payments past their due date to Overdue.
func (jr *JobRunner) MarkOverduePayments() {
	jr.runWithRecovery("MarkOverduePayments", func() {
		ctx := context.Background()

		count, err := jr.store.PaymentRepository.MarkOverdue(ctx)
		if err != nil {
			logger.Error("Failed to mark overdue payments", "error", err)
			return
		}
		logger.Info("Marked payments as overdue", "count", count)
	})
}
