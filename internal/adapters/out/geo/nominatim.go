// Package geo provides the Nominatim implementation of the Geocoder port.
// Any OpenStreetMap-compatible endpoint works; the base URL is configurable
// so self-hosted instances and test servers substitute transparently.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// userAgent identifies the client as required by the Nominatim usage policy.
const userAgent = "logistics-portal/1.0"

// NominatimGeocoder resolves addresses through a Nominatim HTTP endpoint.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewNominatimGeocoder creates a geocoder against the given base URL,
// e.g. "https://nominatim.openstreetmap.org". A nil client gets a default
// with a short timeout; geocoding is best-effort and must fail fast.
func NewNominatimGeocoder(baseURL string, client *http.Client) (*NominatimGeocoder, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  client,
	}, nil
}

// searchResult is the subset of the Nominatim response the adapter reads.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve converts a free-form address into a geographic point.
func (g *NominatimGeocoder) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", address)

	results, err := g.search(ctx, params)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	return resultToPoint(results, address)
}

// ReverseResolve converts a geographic point into a display address.
func (g *NominatimGeocoder) ReverseResolve(ctx context.Context, point kernel.GeoPoint) (string, error) {
	if err := point.Validate(); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lng(), 'f', -1, 64))

	var result searchResult
	if err := g.get(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}

	if result.DisplayName == "" {
		return "", errs.NewObjectNotFoundError("address", point.String())
	}

	return result.DisplayName, nil
}

// PostalLookup resolves a postal code within a country into a geographic point.
func (g *NominatimGeocoder) PostalLookup(ctx context.Context, countryCode, postalCode string) (kernel.GeoPoint, error) {
	if countryCode == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("countryCode")
	}
	if postalCode == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("postalCode")
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("country", countryCode)
	params.Set("postalcode", postalCode)

	results, err := g.search(ctx, params)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	return resultToPoint(results, postalCode)
}

func (g *NominatimGeocoder) search(ctx context.Context, params url.Values) ([]searchResult, error) {
	var results []searchResult
	if err := g.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (g *NominatimGeocoder) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := g.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func resultToPoint(results []searchResult, query string) (kernel.GeoPoint, error) {
	if len(results) == 0 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("location", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}

	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}

	return kernel.NewGeoPoint(lat, lng)
}
