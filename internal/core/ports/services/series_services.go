package services

import (
	"context"
	"time"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	"github.com/kenzhang87-cpu/networth-tracker/internal/utils/chartscale"
)

// SeriesSvcFacade reconstructs dense time-series views from the sparse
// per-account balance grid. Views are recomputed from raw rows on every
// call; nothing is cached across requests.
type SeriesSvcFacade interface {
	// NetWorthSeries returns the per-date points sorted ascending by
	// timestamp, plus the net-worth chart axis scale.
	NetWorthSeries(ctx context.Context, userID string) ([]domain.TimeSeriesPoint, chartscale.Scale, error)

	// CategoryRollup returns the per-date category rollup rows sorted
	// ascending, the month-boundary x-axis ticks, and the stacked chart
	// axis scale.
	CategoryRollup(ctx context.Context, userID string) ([]domain.CategoryRollupRow, []time.Time, chartscale.Scale, error)
}
