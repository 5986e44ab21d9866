package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/auth"
)

// AccessKeyIssuer mints the one-time access key handed to the operator when
// a driver is created. The portal stores no credential material; the key is
// the driver's only way in.
type AccessKeyIssuer interface {
	Issue(p auth.Principal) (string, error)
}

// CreateDriverCommandHandler handles driver registration. When a vehicle
// plate is supplied the vehicle is linked in the same transaction. The
// returned access key is shown once and cannot be recovered later.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	issuer     AccessKeyIssuer
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory, issuer AccessKeyIssuer) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the driver registration command and returns the driver's
// access key.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if err := requireRole(cmd.Principal(), auth.RoleAdmin); err != nil {
		return "", err
	}

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return "", err
	}

	accessKey, err := h.issuer.Issue(auth.Principal{ID: newDriver.ID(), Role: auth.RoleDriver})
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return "", err
	}

	if plate := cmd.VehiclePlate(); plate != "" {
		vehicleRepo := uow.VehicleRepository()
		linkedVehicle, err := vehicleRepo.GetByPlate(ctx, plate)
		if err != nil {
			return "", err
		}

		if err = linkedVehicle.LinkDriver(newDriver.ID()); err != nil {
			return "", err
		}

		if err = vehicleRepo.Update(ctx, linkedVehicle); err != nil {
			return "", err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return accessKey, nil
}
