package service

import (
	"context"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
)

type PropertyService interface {
	Search(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	Get(ctx context.Context, id int32) (*domain.Property, error)
	Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
}

type TenantService interface {
	Get(ctx context.Context, cognitoID string) (*domain.Tenant, error)
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	Update(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	CurrentResidences(ctx context.Context, cognitoID string) ([]domain.Property, error)
	AddFavorite(ctx context.Context, cognitoID string, propertyID int32) (*domain.Tenant, error)
	RemoveFavorite(ctx context.Context, cognitoID string, propertyID int32) (*domain.Tenant, error)
}

type ManagerService interface {
	Get(ctx context.Context, cognitoID string) (*domain.Manager, error)
	Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error)
	Update(ctx context.Context, m *domain.Manager) (*domain.Manager, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*domain.Application, error)
	List(ctx context.Context, userID, userType string) ([]ApplicationView, error)
	UpdateStatus(ctx context.Context, id int32, status string) (*domain.Application, error)
}

type LeaseService interface {
	List(ctx context.Context) ([]LeaseView, error)
	Payments(ctx context.Context, leaseID int32) ([]domain.Payment, error)
}

// Geocoder resolves a street address to a coordinate pair.
type Geocoder interface {
	Geocode(ctx context.Context, address, city, country, postalCode string) (domain.Coordinates, error)
}

// LeaseView is the read-side lease shape carrying the derived next payment
// date.
type LeaseView struct {
	domain.Lease
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

// ApplicationView is an application list row with the most recent lease for
// its tenant/property pair attached. Lease is an explicit null when no such
// lease exists.
type ApplicationView struct {
	domain.Application
	Lease *LeaseView `json:"lease"`
}

type CreatePropertyInput struct {
	Name              string
	Description       string
	PricePerMonth     float64
	SecurityDeposit   float64
	ApplicationFee    float64
	PhotoURLs         []string
	Amenities         []string
	Highlights        []string
	IsPetsAllowed     bool
	IsParkingIncluded bool
	Beds              int32
	Baths             float64
	SquareFeet        int32
	PropertyType      string
	ManagerCognitoID  string

	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
}

type SubmitApplicationInput struct {
	PropertyID      int32
	TenantCognitoID string
	Status          string
	Name            string
	Email           string
	PhoneNumber     string
	Message         string
}
