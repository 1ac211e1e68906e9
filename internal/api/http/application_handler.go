package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"
)

type ApplicationHandler struct {
	applicationSvc service.ApplicationService
}

func NewApplicationHandler(applicationSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	userType := r.URL.Query().Get("userType")

	applications, err := h.applicationSvc.List(r.Context(), userID, userType)
	if err != nil {
		respondError(w, "ListApplications", err)
		return
	}
	respondData(w, http.StatusOK, applications, "")
}

type submitApplicationRequest struct {
	PropertyID      int32  `json:"propertyId"`
	TenantCognitoID string `json:"tenantCognitoId"`
	Status          string `json:"status"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Message         string `json:"message"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "SubmitApplication", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}

	application, err := h.applicationSvc.Submit(r.Context(), service.SubmitApplicationInput{
		PropertyID:      req.PropertyID,
		TenantCognitoID: req.TenantCognitoID,
		Status:          req.Status,
		Name:            req.Name,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Message:         req.Message,
	})
	if err != nil {
		respondError(w, "SubmitApplication", err)
		return
	}
	respondData(w, http.StatusCreated, application, "Application created successfully")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, "UpdateApplicationStatus", err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "UpdateApplicationStatus", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}
	if req.Status == "" {
		respondError(w, "UpdateApplicationStatus", fmt.Errorf("status is required: %w", domain.ErrInvalid))
		return
	}

	application, err := h.applicationSvc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, "UpdateApplicationStatus", err)
		return
	}
	respondData(w, http.StatusOK, application, "")
}
