package domain

// Tenant is keyed by its external identity (cognitoId); the numeric ID
// exists only for relational joins.
type Tenant struct {
	ID          int32  `json:"id"`
	CognitoID   string `json:"cognitoId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	// Favorites is populated on tenant reads.
	Favorites []Property `json:"favorites,omitempty"`
}
