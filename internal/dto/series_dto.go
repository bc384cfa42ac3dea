package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	"github.com/kenzhang87-cpu/networth-tracker/internal/utils/chartscale"
)

// NetWorthPointResponse is one dated net-worth sample with its per-account
// breakdown.
type NetWorthPointResponse struct {
	Date              string                     `json:"date"`
	Timestamp         int64                      `json:"timestamp"`
	PerAccountBalance map[string]decimal.Decimal `json:"perAccountBalance"`
	NetWorth          decimal.Decimal            `json:"netWorth"`
}

// NetWorthSeriesResponse carries the full net-worth series plus the chart
// axis scale computed for it.
type NetWorthSeriesResponse struct {
	Points []NetWorthPointResponse `json:"points"`
	Scale  chartscale.Scale        `json:"scale"`
}

// RollupRowResponse is one dated category rollup row. Liability category
// sums are negative so the stacked chart renders them below zero.
type RollupRowResponse struct {
	Date       string                     `json:"date"`
	Timestamp  int64                      `json:"timestamp"`
	Categories map[string]decimal.Decimal `json:"categories"`
	NetWorth   decimal.Decimal            `json:"netWorth"`
}

// RollupResponse carries the rollup rows, the month-boundary x-axis ticks
// and the stacked chart axis scale.
type RollupResponse struct {
	Rows       []RollupRowResponse `json:"rows"`
	MonthTicks []string            `json:"monthTicks"`
	Scale      chartscale.Scale    `json:"scale"`
}

// ToNetWorthSeriesResponse converts domain series points and a scale to the
// response DTO.
func ToNetWorthSeriesResponse(points []domain.TimeSeriesPoint, scale chartscale.Scale) NetWorthSeriesResponse {
	res := NetWorthSeriesResponse{
		Points: make([]NetWorthPointResponse, len(points)),
		Scale:  scale,
	}
	for i, p := range points {
		res.Points[i] = NetWorthPointResponse{
			Date:              p.Date,
			Timestamp:         p.Timestamp,
			PerAccountBalance: p.PerAccountBalance,
			NetWorth:          p.NetWorth,
		}
	}
	return res
}

// ToRollupResponse converts domain rollup rows, month ticks and a scale to
// the response DTO. Ticks are rendered in canonical ISO form.
func ToRollupResponse(rows []domain.CategoryRollupRow, ticks []time.Time, scale chartscale.Scale) RollupResponse {
	res := RollupResponse{
		Rows:       make([]RollupRowResponse, len(rows)),
		MonthTicks: make([]string, len(ticks)),
		Scale:      scale,
	}
	for i, r := range rows {
		res.Rows[i] = RollupRowResponse{
			Date:       r.Date,
			Timestamp:  r.Timestamp,
			Categories: r.Categories,
			NetWorth:   r.NetWorth,
		}
	}
	for i, t := range ticks {
		res.MonthTicks[i] = t.Format("2006-01-02")
	}
	return res
}
