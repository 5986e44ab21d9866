package services

import (
	"sort"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// GeoZoneIndex is a domain service that resolves which service zone, if
// any, contains a geographic point. It holds an in-memory snapshot of the
// registered zones; zones are immutable between creation and deletion, so
// the index is mutated only by Register, Unregister and wholesale Rebuild.
//
// Key responsibilities:
//   - Maintaining the set of registered zones
//   - Resolving a point to at most one zone
//
// Business rules:
//   - A point is attributed to at most one zone
//   - When zones overlap, resolution is deterministic: zones are probed in
//     ascending (name, id) order and the first containing zone wins
//   - The index is safe for concurrent readers and writers
type GeoZoneIndex struct {
	mu sync.RWMutex
	// zones is ordered ascending by (name, id) to keep resolution
	// deterministic when zones overlap.
	zones []*zone.Zone
}

// NewGeoZoneIndex creates a new, empty GeoZoneIndex.
func NewGeoZoneIndex() *GeoZoneIndex {
	return &GeoZoneIndex{}
}

// Register adds a zone to the index, replacing any registered zone with the
// same ID.
func (i *GeoZoneIndex) Register(z *zone.Zone) error {
	if err := z.Validate(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	i.removeLocked(z.ID())
	i.zones = append(i.zones, z)
	i.sortLocked()

	return nil
}

// Unregister removes a zone from the index. Removing an unknown zone is a
// no-op.
func (i *GeoZoneIndex) Unregister(zoneID kernel.UUID) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.removeLocked(zoneID)
}

// Rebuild replaces the whole index with the given zone set. It is the
// restart/refresh path: zone create and delete rebuild wholesale rather
// than patching, since zones never change between those two events.
func (i *GeoZoneIndex) Rebuild(zones []*zone.Zone) error {
	snapshot := make([]*zone.Zone, 0, len(zones))
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return err
		}
		snapshot = append(snapshot, z)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	i.zones = snapshot
	i.sortLocked()

	return nil
}

// ZoneContaining resolves the zone containing the given point, or nil when
// the point lies outside every registered zone. Repeated calls with a fixed
// zone set and point always return the same zone.
func (i *GeoZoneIndex) ZoneContaining(p kernel.GeoPoint) *zone.Zone {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, z := range i.zones {
		if z.Contains(p) {
			return z
		}
	}

	return nil
}

// Zones returns a snapshot of the registered zones in resolution order.
func (i *GeoZoneIndex) Zones() []*zone.Zone {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]*zone.Zone, len(i.zones))
	copy(out, i.zones)
	return out
}

// removeLocked drops the zone with the given ID. Callers must hold mu.
func (i *GeoZoneIndex) removeLocked(zoneID kernel.UUID) {
	for idx, z := range i.zones {
		if z.ID().IsEqual(zoneID) {
			i.zones = append(i.zones[:idx], i.zones[idx+1:]...)
			return
		}
	}
}

// sortLocked restores ascending (name, id) resolution order. Callers must
// hold mu.
func (i *GeoZoneIndex) sortLocked() {
	sort.Slice(i.zones, func(a, b int) bool {
		if i.zones[a].Name() != i.zones[b].Name() {
			return i.zones[a].Name() < i.zones[b].Name()
		}
		return i.zones[a].ID().String() < i.zones[b].ID().String()
	})
}
