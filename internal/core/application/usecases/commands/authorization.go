package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/auth"
)

// ErrPermissionDenied is returned when the caller's principal is not allowed
// to execute a command.
var ErrPermissionDenied = auth.ErrPermissionDenied

// requireRole checks that the principal acts in one of the allowed roles.
func requireRole(p auth.Principal, allowed ...auth.Role) error {
	for _, role := range allowed {
		if p.Role == role {
			return nil
		}
	}

	return ErrPermissionDenied
}

// requireAssignedDriver checks that the principal is the driver linked to
// the order's assigned vehicle. Orders without a vehicle reference always
// fail the check.
func requireAssignedDriver(
	ctx context.Context,
	vehicles ports.VehicleRepository,
	o *order.Order,
	p auth.Principal,
) error {
	if p.Role != auth.RoleDriver || o.Vehicle() == nil {
		return ErrPermissionDenied
	}

	assignedVehicle, err := vehicles.Get(ctx, *o.Vehicle())
	if err != nil {
		return err
	}

	if !assignedVehicle.IsDrivenBy(p.ID) {
		return ErrPermissionDenied
	}

	return nil
}
