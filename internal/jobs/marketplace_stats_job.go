package jobs

import (
	"context"
	"log/slog"

	"arribaeats/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// MarketplaceStatsJob periodically snapshots marketplace counters into the
// log: actors by role, restaurants, and orders by status.
type MarketplaceStatsJob struct {
	handler queries.MarketplaceStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMarketplaceStatsJob creates a job that logs marketplace stats every minute.
func NewMarketplaceStatsJob(handler queries.MarketplaceStatsQueryHandler, logger *slog.Logger) *MarketplaceStatsJob {
	return &MarketplaceStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "marketplace_stats_job"),
	}
}

// Start begins the stats job to run every minute.
func (j *MarketplaceStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewMarketplaceStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Marketplace stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Marketplace snapshot",
			"restaurants", stats.Restaurants,
			"actors", stats.ActorsByRole,
			"orders", stats.OrdersByStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Marketplace stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *MarketplaceStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Marketplace stats job stopped")
}
