package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"

	"github.com/gorilla/mux"
)

type ManagerHandler struct {
	managerSvc service.ManagerService
}

func NewManagerHandler(managerSvc service.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerSvc: managerSvc}
}

type managerRequest struct {
	CognitoID   string `json:"cognitoId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *ManagerHandler) Get(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	manager, err := h.managerSvc.Get(r.Context(), cognitoID)
	if err != nil {
		respondError(w, "GetManager", err)
		return
	}
	respondData(w, http.StatusOK, manager, "")
}

func (h *ManagerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req managerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "CreateManager", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}
	manager, err := h.managerSvc.Create(r.Context(), &domain.Manager{
		CognitoID:   req.CognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(w, "CreateManager", err)
		return
	}
	respondData(w, http.StatusCreated, manager, fmt.Sprintf("Manager with cognitoId %s created successfully", manager.CognitoID))
}

func (h *ManagerHandler) Update(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	var req managerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "UpdateManager", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}
	manager, err := h.managerSvc.Update(r.Context(), &domain.Manager{
		CognitoID:   cognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(w, "UpdateManager", err)
		return
	}
	respondData(w, http.StatusOK, manager, fmt.Sprintf("Manager with cognitoId %s updated successfully", cognitoID))
}
