package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "Pending"
	PaymentStatusPaid          PaymentStatus = "Paid"
	PaymentStatusPartiallyPaid PaymentStatus = "PartiallyPaid"
	PaymentStatusOverdue       PaymentStatus = "Overdue"
)

type Payment struct {
	ID            int32         `json:"id"`
	AmountDue     float64       `json:"amountDue"`
	AmountPaid    float64       `json:"amountPaid"`
	DueDate       time.Time     `json:"dueDate"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	LeaseID       int32         `json:"leaseId"`
}
