package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// Geocoder resolves between free-form addresses and geographic coordinates
// using an external provider. Failures degrade gracefully: callers leave
// location fields unresolved and let the operator supply them manually —
// a geocoding outage never blocks order creation or assignment, and no
// geocoding call is made inside a capacity-affecting transaction.
type Geocoder interface {
	// Resolve converts a free-form address into a geographic point.
	Resolve(ctx context.Context, address string) (kernel.GeoPoint, error)

	// ReverseResolve converts a geographic point into a display address.
	ReverseResolve(ctx context.Context, point kernel.GeoPoint) (string, error)

	// PostalLookup resolves a postal code within a country into a
	// geographic point.
	PostalLookup(ctx context.Context, countryCode, postalCode string) (kernel.GeoPoint, error)
}
