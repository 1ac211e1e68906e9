package http

import (
	"net/http"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"
)

type LeaseHandler struct {
	leaseSvc service.LeaseService
}

func NewLeaseHandler(leaseSvc service.LeaseService) *LeaseHandler {
	return &LeaseHandler{leaseSvc: leaseSvc}
}

func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	leases, err := h.leaseSvc.List(r.Context())
	if err != nil {
		respondError(w, "ListLeases", err)
		return
	}
	respondData(w, http.StatusOK, leases, "")
}

func (h *LeaseHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, "GetLeasePayments", err)
		return
	}
	payments, err := h.leaseSvc.Payments(r.Context(), id)
	if err != nil {
		respondError(w, "GetLeasePayments", err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	respondData(w, http.StatusOK, payments, "")
}
