package services

import (
	"errors"
	"sort"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// ErrGeoZoneIndexIsRequired is returned when constructing a DispatchMatcher
// without a zone index.
var ErrGeoZoneIndexIsRequired = errors.New("geo zone index is required")

// Match is one dispatch candidate: a vehicle together with the utilization
// it had when the match was computed. The utilization lets callers present
// the candidate list without recomputing load.
type Match struct {
	Vehicle *vehicle.Vehicle
	// Utilization is the vehicle's load percentage at match time.
	Utilization float64
}

// DispatchMatcher is a domain service that produces the ordered list of
// vehicles eligible to carry an order. It combines zone resolution
// (GeoZoneIndex) with headroom checks (CapacityLedger).
//
// Key responsibilities:
//   - Resolving the order's pickup point to a service zone
//   - Filtering that zone's vehicles by capacity headroom
//   - Ordering candidates so less-loaded vehicles are offered first
//
// Business rules:
//   - A pickup outside every zone yields an empty list, not an error
//   - Only vehicles assigned to the resolved zone are considered
//   - Candidates are sorted ascending by utilization; ties break by plate
type DispatchMatcher struct {
	index  *GeoZoneIndex
	ledger CapacityLedger
}

// NewDispatchMatcher creates a new DispatchMatcher over the given zone
// index and capacity ledger.
func NewDispatchMatcher(index *GeoZoneIndex, ledger CapacityLedger) (DispatchMatcher, error) {
	if index == nil {
		return DispatchMatcher{}, ErrGeoZoneIndexIsRequired
	}

	return DispatchMatcher{index: index, ledger: ledger}, nil
}

// CompatibleVehicles returns the vehicles eligible to carry the order,
// sorted ascending by current utilization so less-loaded vehicles are
// offered first.
//
// Parameters:
//   - o: the order to place (must be valid)
//   - fleet: the vehicles to consider
//   - activeOrders: the active orders used to derive each vehicle's load
//
// Returns an empty list, never an error, when the pickup point matches no
// zone or no vehicle has headroom.
func (m DispatchMatcher) CompatibleVehicles(o *order.Order, fleet []*vehicle.Vehicle, activeOrders []*order.Order) ([]Match, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	pickupZone := m.index.ZoneContaining(o.Pickup())
	if pickupZone == nil {
		return []Match{}, nil
	}

	matches := make([]Match, 0, len(fleet))
	for _, v := range fleet {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if v.Zone() == nil || !v.Zone().IsEqual(pickupZone.ID()) {
			continue
		}

		ok, err := m.ledger.CanAccept(v, o, activeOrders)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		utilization, err := m.ledger.Utilization(v, activeOrders)
		if err != nil {
			return nil, err
		}

		matches = append(matches, Match{Vehicle: v, Utilization: utilization})
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Utilization != matches[b].Utilization {
			return matches[a].Utilization < matches[b].Utilization
		}
		return matches[a].Vehicle.Plate() < matches[b].Vehicle.Plate()
	})

	return matches, nil
}
