package http

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
)

// filterAny is the literal query value meaning "no filter".
const filterAny = "any"

// parsePropertyFilter maps search query parameters onto a PropertyFilter.
// Absent, "any" and unparsable values are no-ops: a malformed optional
// filter never fails the request.
func parsePropertyFilter(q url.Values) domain.PropertyFilter {
	var f domain.PropertyFilter

	if raw := q.Get("favoriteIds"); raw != "" {
		// A supplied parameter always filters, even when every token is
		// dropped: an empty set then matches nothing.
		f.FavoriteIDs = []int32{}
		for _, tok := range strings.Split(raw, ",") {
			// Non-numeric tokens are silently dropped.
			if id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32); err == nil {
				f.FavoriteIDs = append(f.FavoriteIDs, int32(id))
			}
		}
	}

	f.PriceMin = parseFloatParam(q.Get("priceMin"))
	f.PriceMax = parseFloatParam(q.Get("priceMax"))
	f.Beds = parseIntParam(q.Get("beds"))
	f.Baths = parseFloatParam(q.Get("baths"))
	f.SquareFeetMin = parseIntParam(q.Get("squareFeetMin"))
	f.SquareFeetMax = parseIntParam(q.Get("squareFeetMax"))

	if v := q.Get("propertyType"); v != "" && v != filterAny {
		f.PropertyType = v
	}

	if raw := q.Get("amenities"); raw != "" && raw != filterAny {
		for _, tok := range strings.Split(raw, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				f.Amenities = append(f.Amenities, tok)
			}
		}
	}

	if raw := q.Get("availableFrom"); raw != "" && raw != filterAny {
		if date, err := time.Parse("2006-01-02", raw); err == nil {
			f.AvailableFrom = &date
		}
	}

	// The radius filter needs both coordinates; otherwise it is skipped.
	lat := parseFloatParam(q.Get("latitude"))
	lng := parseFloatParam(q.Get("longitude"))
	if lat != nil && lng != nil {
		f.Latitude = lat
		f.Longitude = lng
	}

	return f
}

func parseFloatParam(raw string) *float64 {
	if raw == "" || raw == filterAny {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(raw string) *int32 {
	if raw == "" || raw == filterAny {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	n := int32(v)
	return &n
}
