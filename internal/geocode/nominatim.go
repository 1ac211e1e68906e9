package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
)

// Client is a forward-geocoding client for a Nominatim-compatible endpoint.
// Lookups run with a bounded timeout; a failed lookup is an error the caller
// surfaces, never a crash.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// nominatim returns lon/lat as JSON strings.
type result struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

func (c *Client) Geocode(ctx context.Context, address, city, country, postalCode string) (domain.Coordinates, error) {
	params := url.Values{}
	params.Set("street", address)
	params.Set("city", city)
	params.Set("country", country)
	params.Set("postalcode", postalCode)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocoding results for %q, %q", address, city)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("bad longitude in geocoding response: %w", err)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("bad latitude in geocoding response: %w", err)
	}

	return domain.Coordinates{Longitude: lon, Latitude: lat}, nil
}
