package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

// DispatchJob periodically places the oldest pending order onto a vehicle.
// It runs the same matching the operator screen shows: zone containment,
// capacity headroom, least utilized candidate first. The actual state change
// goes through the assign command, so the concurrency guarantees of manual
// assignment apply unchanged.
type DispatchJob struct {
	orders    ports.OrderRepository
	vehicles  ports.VehicleRepository
	matcher   services.DispatchMatcher
	assign    commands.AssignOrderCommandHandler
	principal auth.Principal
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDispatchJob creates a job that auto-assigns pending orders. The
// principal is the system identity the assignments are issued under; it must
// carry the admin role or every tick will be refused.
func NewDispatchJob(
	orders ports.OrderRepository,
	vehicles ports.VehicleRepository,
	matcher services.DispatchMatcher,
	assign commands.AssignOrderCommandHandler,
	principal auth.Principal,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		orders:    orders,
		vehicles:  vehicles,
		matcher:   matcher,
		assign:    assign,
		principal: principal,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job, running every five seconds.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.dispatchNext(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

// dispatchNext assigns the oldest pending order to the least utilized
// compatible vehicle. An empty queue, an order no vehicle can take, and a
// capacity race lost to a concurrent assignment are all expected outcomes
// and not reported as failures.
func (j *DispatchJob) dispatchNext(ctx context.Context) error {
	pending, err := j.orders.GetFirstInPendingStatus(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	fleet, err := j.vehicles.GetAll(ctx)
	if err != nil {
		return err
	}

	activeOrders, err := j.orders.GetAllActive(ctx)
	if err != nil {
		return err
	}

	matches, err := j.matcher.CompatibleVehicles(pending, fleet, activeOrders)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		j.logger.DebugContext(ctx, "No compatible vehicle for pending order",
			"order_id", pending.ID().String())
		return nil
	}

	best := matches[0]
	cmd, err := commands.NewAssignOrderCommand(j.principal, pending.ID(), best.Vehicle.ID())
	if err != nil {
		return err
	}

	if err := j.assign.Handle(ctx, cmd); err != nil {
		// The headroom seen here may be gone by the time the transaction
		// re-checks it under the vehicle lock.
		if errors.Is(err, errs.ErrCapacityExceeded) {
			j.logger.DebugContext(ctx, "Vehicle filled up before assignment committed",
				"order_id", pending.ID().String(),
				"vehicle_id", best.Vehicle.ID().String())
			return nil
		}
		return err
	}

	j.logger.InfoContext(ctx, "Order auto-assigned",
		"order_id", pending.ID().String(),
		"vehicle_id", best.Vehicle.ID().String(),
		"plate", best.Vehicle.Plate(),
		"utilization", best.Utilization)
	return nil
}
