package services

import (
	"math"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// capacityEpsilon is the relative tolerance used when comparing a vehicle's
// prospective load against its limits. It absorbs floating-point residue
// when an order lands exactly at capacity without admitting real overloads.
const capacityEpsilon = 1e-9

// Load is a vehicle's committed payload across both capacity dimensions.
type Load struct {
	// WeightKg is the summed weight of the active orders, in kilograms.
	WeightKg float64
	// VolumeM3 is the summed volume of the active orders, in cubic meters.
	VolumeM3 float64
}

// CapacityLedger is a domain service that answers capacity questions about a
// vehicle. Every answer is derived at call time by summing the active
// (assigned or shipped) orders referencing the vehicle — the ledger keeps no
// counters of its own, so two call sites asking about the same vehicle with
// the same order set can never disagree.
//
// Key responsibilities:
//   - Deriving a vehicle's current load from its active orders
//   - Expressing load as a single utilization percentage
//   - Deciding whether one more order fits within both capacity limits
//
// Business rules:
//   - Only ASSIGNED and SHIPPED orders count toward load
//   - Utilization is the larger of the weight and volume ratios, capped at 100
//   - Acceptance checks both dimensions with a small relative epsilon
type CapacityLedger struct{}

// NewCapacityLedger creates a new CapacityLedger instance.
func NewCapacityLedger() CapacityLedger {
	return CapacityLedger{}
}

// CurrentLoad derives the vehicle's committed weight and volume by summing
// the active orders assigned to it. Orders in the slice that are inactive or
// reference a different vehicle are ignored, so callers may pass a broader
// order set than the vehicle's own.
func (CapacityLedger) CurrentLoad(v *vehicle.Vehicle, activeOrders []*order.Order) (Load, error) {
	if err := v.Validate(); err != nil {
		return Load{}, err
	}

	var load Load
	for _, o := range activeOrders {
		if err := o.Validate(); err != nil {
			return Load{}, err
		}
		if !o.IsActive() || o.Vehicle() == nil || !o.Vehicle().IsEqual(v.ID()) {
			continue
		}
		load.WeightKg += o.WeightKg()
		load.VolumeM3 += o.VolumeM3()
	}

	return load, nil
}

// Utilization expresses the vehicle's current load as a percentage. Either
// capacity dimension can be the binding constraint, so the result is the
// larger of the weight and volume ratios, capped at 100.
func (c CapacityLedger) Utilization(v *vehicle.Vehicle, activeOrders []*order.Order) (float64, error) {
	load, err := c.CurrentLoad(v, activeOrders)
	if err != nil {
		return 0, err
	}

	weightUtil := load.WeightKg / v.MaxWeightKg() * 100
	volumeUtil := load.VolumeM3 / v.MaxVolumeM3() * 100

	return math.Min(math.Max(weightUtil, volumeUtil), 100), nil
}

// CanAccept reports whether the candidate order fits within the vehicle's
// remaining headroom in both dimensions, given the vehicle's active orders.
func (c CapacityLedger) CanAccept(v *vehicle.Vehicle, candidate *order.Order, activeOrders []*order.Order) (bool, error) {
	if err := candidate.Validate(); err != nil {
		return false, err
	}

	load, err := c.CurrentLoad(v, activeOrders)
	if err != nil {
		return false, err
	}

	return fitsWithin(load.WeightKg+candidate.WeightKg(), v.MaxWeightKg()) &&
		fitsWithin(load.VolumeM3+candidate.VolumeM3(), v.MaxVolumeM3()), nil
}

// fitsWithin compares a prospective load against a limit using a relative
// epsilon, so sums that are mathematically equal to the limit are not
// rejected over floating-point residue.
func fitsWithin(load, limit float64) bool {
	return load <= limit+capacityEpsilon*math.Max(load, limit)
}
