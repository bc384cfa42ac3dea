package domain

import "github.com/shopspring/decimal"

// TimeSeriesPoint is one dense per-date view over the sparse balance grid.
// NetWorth is always the raw sum of every per-account balance present at
// the date; it is never stored independently.
type TimeSeriesPoint struct {
	Date              string                     `json:"date"` // canonical "YYYY-MM-DD"
	Timestamp         int64                      `json:"timestamp"`
	PerAccountBalance map[string]decimal.Decimal `json:"perAccountBalance"`
	NetWorth          decimal.Decimal            `json:"netWorth"`
}

// CategoryRollupRow is the per-date aggregation of balances grouped by the
// fixed category vocabulary. Liability-category sums carry a negative sign
// so liabilities stack below the zero baseline; NetWorth is the grand sum
// of the signed category sums, which equals assets minus liabilities.
type CategoryRollupRow struct {
	Date       string                     `json:"date"`
	Timestamp  int64                      `json:"timestamp"`
	Categories map[string]decimal.Decimal `json:"categories"`
	NetWorth   decimal.Decimal            `json:"netWorth"`
}
