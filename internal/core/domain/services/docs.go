// Package services contains stateless domain services that coordinate
// behavior across aggregates: GeoZoneIndex resolves pickup points to
// service zones, CapacityLedger derives vehicle load and headroom from
// active orders, and DispatchMatcher combines the two into an ordered list
// of dispatch candidates.
package services
