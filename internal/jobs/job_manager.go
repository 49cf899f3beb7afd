package jobs

import (
	"fmt"
	"log/slog"

	"arribaeats/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	marketplaceStatsJob *MarketplaceStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsHandler queries.MarketplaceStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		marketplaceStatsJob: NewMarketplaceStatsJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.marketplaceStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start marketplace stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.marketplaceStatsJob.Stop()
}
