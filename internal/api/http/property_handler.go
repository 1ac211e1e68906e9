package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"

	"github.com/gorilla/mux"
)

type PropertyHandler struct {
	propertySvc service.PropertyService
}

func NewPropertyHandler(propertySvc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc}
}

func (h *PropertyHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := parsePropertyFilter(r.URL.Query())
	properties, err := h.propertySvc.Search(r.Context(), filter)
	if err != nil {
		respondError(w, "SearchProperties", err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	respondProperties(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, "GetProperty", err)
		return
	}
	property, err := h.propertySvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, "GetProperty", err)
		return
	}
	respondData(w, http.StatusOK, property, "")
}

type createPropertyRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PricePerMonth     float64  `json:"pricePerMonth"`
	SecurityDeposit   float64  `json:"securityDeposit"`
	ApplicationFee    float64  `json:"applicationFee"`
	PhotoURLs         []string `json:"photoUrls"`
	Amenities         []string `json:"amenities"`
	Highlights        []string `json:"highlights"`
	IsPetsAllowed     bool     `json:"isPetsAllowed"`
	IsParkingIncluded bool     `json:"isParkingIncluded"`
	Beds              int32    `json:"beds"`
	Baths             float64  `json:"baths"`
	SquareFeet        int32    `json:"squareFeet"`
	PropertyType      string   `json:"propertyType"`
	ManagerCognitoID  string   `json:"managerCognitoId"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Country           string   `json:"country"`
	PostalCode        string   `json:"postalCode"`
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "CreateProperty", fmt.Errorf("malformed request body: %w", domain.ErrInvalid))
		return
	}

	property, err := h.propertySvc.Create(r.Context(), service.CreatePropertyInput{
		Name:              req.Name,
		Description:       req.Description,
		PricePerMonth:     req.PricePerMonth,
		SecurityDeposit:   req.SecurityDeposit,
		ApplicationFee:    req.ApplicationFee,
		PhotoURLs:         req.PhotoURLs,
		Amenities:         req.Amenities,
		Highlights:        req.Highlights,
		IsPetsAllowed:     req.IsPetsAllowed,
		IsParkingIncluded: req.IsParkingIncluded,
		Beds:              req.Beds,
		Baths:             req.Baths,
		SquareFeet:        req.SquareFeet,
		PropertyType:      req.PropertyType,
		ManagerCognitoID:  req.ManagerCognitoID,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		PostalCode:        req.PostalCode,
	})
	if err != nil {
		respondError(w, "CreateProperty", err)
		return
	}
	respondData(w, http.StatusCreated, property, "Property created successfully")
}

// pathID parses a numeric path variable, reporting malformed ids as
// validation errors.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q: %w", name, raw, domain.ErrInvalid)
	}
	return int32(id), nil
}
