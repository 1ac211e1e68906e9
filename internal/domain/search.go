package domain

import "time"

// PropertyFilter is the composed predicate for property search. Nil fields
// mean "no filter"; all set fields are ANDed together. Callers build it from
// query parameters; malformed optional parameters are dropped during parsing
// and never reach the filter. FavoriteIDs is the one exception: a non-nil
// empty set still filters, and matches nothing.
type PropertyFilter struct {
	FavoriteIDs   []int32
	PriceMin      *float64
	PriceMax      *float64
	Beds          *int32
	Baths         *float64
	PropertyType  string
	SquareFeetMin *int32
	SquareFeetMax *int32
	Amenities     []string
	AvailableFrom *time.Time
	Latitude      *float64
	Longitude     *float64
}

// HasPoint reports whether both coordinates are present, enabling the
// radius filter.
func (f *PropertyFilter) HasPoint() bool {
	return f.Latitude != nil && f.Longitude != nil
}
