package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ZoneIndexRefreshJob periodically rebuilds the in-memory zone index from
// storage. Zone commands keep the index of their own process current; the
// refresh picks up changes made by other instances sharing the database.
type ZoneIndexRefreshJob struct {
	zones  ports.ZoneRepository
	index  *services.GeoZoneIndex
	cron   *cron.Cron
	logger *slog.Logger
}

// NewZoneIndexRefreshJob creates a job that keeps the zone index in sync
// with the zones table.
func NewZoneIndexRefreshJob(
	zones ports.ZoneRepository,
	index *services.GeoZoneIndex,
	logger *slog.Logger,
) *ZoneIndexRefreshJob {
	return &ZoneIndexRefreshJob{
		zones:  zones,
		index:  index,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "zone_index_refresh_job"),
	}
}

// Start begins the refresh job, running every minute.
func (j *ZoneIndexRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		zones, err := j.zones.GetAll(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Zone index refresh failed", "error", err)
			return
		}

		if err := j.index.Rebuild(zones); err != nil {
			j.logger.ErrorContext(ctx, "Zone index rebuild failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Zone index refresh job started (running every minute)")
	return nil
}

// Stop stops the refresh job.
func (j *ZoneIndexRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Zone index refresh job stopped")
}
