package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"

	"github.com/gorilla/mux"
)

type TenantHandler struct {
	tenantSvc service.TenantService
}

func NewTenantHandler(tenantSvc service.TenantService) *TenantHandler {
	return &TenantHandler{tenantSvc: tenantSvc}
}

type tenantRequest struct {
	CognitoID   string `json:"cognitoId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	tenant, err := h.tenantSvc.Get(r.Context(), cognitoID)
	if err != nil {
		respondError(w, "GetTenant", err)
		return
	}
	respondData(w, http.StatusOK, tenant, "")
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "CreateTenant", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}
	tenant, err := h.tenantSvc.Create(r.Context(), &domain.Tenant{
		CognitoID:   req.CognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(w, "CreateTenant", err)
		return
	}
	respondData(w, http.StatusCreated, tenant, fmt.Sprintf("Tenant with cognitoId %s created successfully", tenant.CognitoID))
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	var req tenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "UpdateTenant", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}
	tenant, err := h.tenantSvc.Update(r.Context(), &domain.Tenant{
		CognitoID:   cognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(w, "UpdateTenant", err)
		return
	}
	respondData(w, http.StatusOK, tenant, fmt.Sprintf("Tenant with cognitoId %s updated successfully", cognitoID))
}

func (h *TenantHandler) CurrentResidences(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	properties, err := h.tenantSvc.CurrentResidences(r.Context(), cognitoID)
	if err != nil {
		respondError(w, "GetCurrentResidences", err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	respondProperties(w, http.StatusOK, properties)
}

func (h *TenantHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	propertyID, err := pathID(r, "propertyId")
	if err != nil {
		respondError(w, "AddFavoriteProperty", err)
		return
	}
	tenant, err := h.tenantSvc.AddFavorite(r.Context(), cognitoID, propertyID)
	if err != nil {
		respondError(w, "AddFavoriteProperty", err)
		return
	}
	respondData(w, http.StatusOK, tenant, "")
}

func (h *TenantHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	cognitoID := mux.Vars(r)["cognitoId"]
	propertyID, err := pathID(r, "propertyId")
	if err != nil {
		respondError(w, "RemoveFavoriteProperty", err)
		return
	}
	tenant, err := h.tenantSvc.RemoveFavorite(r.Context(), cognitoID, propertyID)
	if err != nil {
		respondError(w, "RemoveFavoriteProperty", err)
		return
	}
	respondData(w, http.StatusOK, tenant, "")
}
