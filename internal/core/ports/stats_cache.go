package ports

import (
	"context"

	"github.com/leadflow/crm-api/internal/core/domain"
)

// StatsCache holds a short-lived copy of the dashboard aggregates so the
// dashboard poll does not hit three count queries per request. Get returns
// (nil, nil) on a miss.
type StatsCache interface {
	Get(ctx context.Context) (*domain.DashboardStats, error)
	Set(ctx context.Context, stats *domain.DashboardStats) error
}
