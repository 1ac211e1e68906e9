package domain

// SRID is the spatial reference system for all stored coordinates (WGS 84).
const SRID = 4326

// Search radius for the latitude/longitude property filter. The radius is
// approximated in degrees: roughly 111 km per degree at the equator.
const (
	SearchRadiusKm = 1000.0
	KmPerDegree    = 111.0
)

type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Location struct {
	ID          int32       `json:"id"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	PostalCode  string      `json:"postalCode"`
	Coordinates Coordinates `json:"coordinates"`
	Geohash     string      `json:"-"`
}
