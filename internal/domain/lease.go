package domain

import "time"

// DefaultLeaseTermDays is the term of a lease created at application approval.
const DefaultLeaseTermDays = 365

// Lease is a time-bounded rent agreement. Rent and deposit are snapshots of
// the property's price and security deposit at creation time; later property
// price changes never alter an existing lease.
type Lease struct {
	ID              int32     `json:"id"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Rent            float64   `json:"rent"`
	Deposit         float64   `json:"deposit"`
	PropertyID      int32     `json:"propertyId"`
	TenantCognitoID string    `json:"tenantCognitoId"`

	// Populated on list reads.
	Property *Property `json:"property,omitempty"`
	Tenant   *Tenant   `json:"tenant,omitempty"`
}

// NewLeaseFromProperty builds a default-term lease snapshot for the given
// tenant, starting now.
func NewLeaseFromProperty(p *Property, tenantCognitoID string, now time.Time) *Lease {
	return &Lease{
		StartDate:       now,
		EndDate:         now.AddDate(0, 0, DefaultLeaseTermDays),
		Rent:            p.PricePerMonth,
		Deposit:         p.SecurityDeposit,
		PropertyID:      p.ID,
		TenantCognitoID: tenantCognitoID,
	}
}

// NextPaymentDate returns the first date strictly after now, reached by
// repeatedly adding one calendar month to the lease start date.
func NextPaymentDate(start, now time.Time) time.Time {
	next := start
	for !next.After(now) {
		next = next.AddDate(0, 1, 0)
	}
	return next
}
