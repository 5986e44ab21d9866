package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrZoneShapeIsRequired = errors.New(
		"either coordinates or a geojson geometry must be provided, not both",
	)
)

// CreateZoneCommand represents an operator's request to create a service
// zone. The boundary arrives in one of two shapes: an operator-drawn ring
// of (lat,lng) coordinate pairs, or an externally-sourced GeoJSON
// Polygon/MultiPolygon geometry whose (lng,lat) positions are transposed on
// ingestion.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	principal   auth.Principal
	zoneID      kernel.UUID
	name        string
	coordinates [][2]float64
	geoJSON     []byte

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new zone. Exactly one
// of coordinates (operator-drawn, (lat,lng) order) or geoJSON must be given.
func NewCreateZoneCommand(
	principal auth.Principal,
	zoneID kernel.UUID,
	name string,
	coordinates [][2]float64,
	geoJSON []byte,
) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		principal:   principal,
		coordinates: coordinates,
		geoJSON:     geoJSON,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setName(name),
		cmd.validateShape(),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c CreateZoneCommand) Principal() auth.Principal {
	return c.principal
}

// ZoneID returns the new zone's unique identifier.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the zone's label.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Coordinates returns the operator-drawn (lat,lng) ring, or nil when the
// zone arrives as GeoJSON.
func (c CreateZoneCommand) Coordinates() [][2]float64 {
	return c.coordinates
}

// GeoJSON returns the raw GeoJSON geometry, or nil when the zone arrives as
// an operator-drawn ring.
func (c CreateZoneCommand) GeoJSON() []byte {
	return c.geoJSON
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) validateShape() error {
	if (len(c.coordinates) == 0) == (len(c.geoJSON) == 0) {
		return ErrZoneShapeIsRequired
	}

	return nil
}
