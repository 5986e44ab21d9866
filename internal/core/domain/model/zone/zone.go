package zone

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// minRingVertices is the minimum number of distinct vertices a boundary
// ring must have to enclose any area.
const minRingVertices = 3

// Domain errors for zone operations.
var (
	// ErrNameIsRequired is returned when attempting to create a zone without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrBoundaryIsRequired is returned when a zone is created with no rings.
	ErrBoundaryIsRequired = errs.NewValueIsRequiredError("boundary")
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone constructor")
)

// Zone represents a named polygonal service area. Its boundary is one or
// more closed rings of geographic vertices; an order's pickup point must
// fall inside a zone before that zone's vehicles are offered for dispatch.
//
// Business rules:
//   - Must have a valid UUID and a non-empty name
//   - Each boundary ring has at least 3 distinct vertices
//   - A ring supplied with an explicit closing vertex (first == last) is
//     normalized by dropping the duplicate
//   - Zones are immutable after creation; the only mutation is deletion
type Zone struct {
	// id uniquely identifies the zone
	id kernel.UUID
	// name is the human-readable zone label
	name string
	// rings are the boundary rings; each is stored open (no duplicated
	// closing vertex) in (lat,lng) vertex order
	rings [][]kernel.GeoPoint
	// guard ensures the zone was properly constructed
	guard guard.ConstructorGuard
}

// NewZone creates a new Zone with the specified boundary rings.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable label (must be non-empty)
//   - rings: one or more boundary rings of (lat,lng) vertices; each ring
//     must contain at least 3 distinct vertices, and a duplicated closing
//     vertex is dropped during normalization
//
// Returns the created zone, or an aggregated validation error.
func NewZone(id kernel.UUID, name string, rings [][]kernel.GeoPoint) (*Zone, error) {
	z := &Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setRings(rings),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone aggregate from persistent storage. The
// stored rings go through the same normalization and validation as freshly
// created ones.
func RestoreZone(id kernel.UUID, name string, rings [][]kernel.GeoPoint) (*Zone, error) {
	return NewZone(id, name, rings)
}

// Validate ensures the Zone instance was properly constructed.
func (z *Zone) Validate() error {
	if z == nil || z.guard.Validate(ErrZoneIsNotConstructed) != nil {
		return ErrZoneIsNotConstructed
	}

	return nil
}

// IsEqual compares two zones by their unique identifiers.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's human-readable label.
func (z *Zone) Name() string {
	return z.name
}

// Rings returns the zone's boundary rings. Each ring is open (the closing
// vertex is implied) with vertices in (lat,lng) order. The returned slices
// must not be mutated.
func (z *Zone) Rings() [][]kernel.GeoPoint {
	return z.rings
}

// Contains reports whether the given point lies inside the zone's boundary.
// The test is an even-odd ray cast against each ring: a horizontal ray from
// the point crosses ring edges using half-open vertex intervals, so a point
// shared between two adjacent edges is counted exactly once. Points on the
// boundary resolve consistently across calls but are not guaranteed to be
// treated as inside.
func (z *Zone) Contains(p kernel.GeoPoint) bool {
	for _, ring := range z.rings {
		if ringContains(ring, p) {
			return true
		}
	}

	return false
}

// ringContains is the even-odd ray casting test for a single open ring.
func ringContains(ring []kernel.GeoPoint, p kernel.GeoPoint) bool {
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.Lat() > p.Lat()) != (vj.Lat() > p.Lat()) {
			crossLng := vi.Lng() + (p.Lat()-vi.Lat())/(vj.Lat()-vi.Lat())*(vj.Lng()-vi.Lng())
			if p.Lng() < crossLng {
				inside = !inside
			}
		}
	}

	return inside
}

// setID validates and sets the zone's unique identifier.
func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

// setName validates and sets the zone's label.
func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

// setRings normalizes and validates the boundary rings.
func (z *Zone) setRings(rings [][]kernel.GeoPoint) error {
	if len(rings) == 0 {
		return ErrBoundaryIsRequired
	}

	normalized := make([][]kernel.GeoPoint, 0, len(rings))
	for i, ring := range rings {
		open := openRing(ring)
		if len(open) < minRingVertices {
			return errs.NewValueIsInvalidErrorWithCause("boundary",
				fmt.Errorf("ring %d has %d vertices, at least %d required", i, len(open), minRingVertices))
		}
		for _, v := range open {
			if err := v.Validate(); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("boundary", err)
			}
		}
		normalized = append(normalized, open)
	}

	z.rings = normalized
	return nil
}

// openRing drops the duplicated closing vertex if the ring is explicitly
// closed, returning a copy so callers keep ownership of their input.
func openRing(ring []kernel.GeoPoint) []kernel.GeoPoint {
	if len(ring) > 1 {
		first, last := ring[0], ring[len(ring)-1]
		if first.Lat() == last.Lat() && first.Lng() == last.Lng() {
			ring = ring[:len(ring)-1]
		}
	}

	out := make([]kernel.GeoPoint, len(ring))
	copy(out, ring)
	return out
}
