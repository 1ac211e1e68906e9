package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusDenied   ApplicationStatus = "Denied"
	ApplicationStatusApproved ApplicationStatus = "Approved"
)

// Valid reports whether s is one of the three recognized statuses.
// Arbitrary status strings are rejected at the service layer.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusDenied, ApplicationStatusApproved:
		return true
	}
	return false
}

type Application struct {
	ID              int32             `json:"id"`
	ApplicationDate time.Time         `json:"applicationDate"`
	Status          ApplicationStatus `json:"status"`
	PropertyID      int32             `json:"propertyId"`
	TenantCognitoID string            `json:"tenantCognitoId"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	PhoneNumber     string            `json:"phoneNumber"`
	Message         string            `json:"message"`
	LeaseID         *int32            `json:"leaseId"`

	// Populated on list reads.
	Property *Property `json:"property,omitempty"`
	Tenant   *Tenant   `json:"tenant,omitempty"`
}
