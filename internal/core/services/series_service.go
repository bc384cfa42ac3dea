package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	portsrepo "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/repositories"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dateutil"
	"github.com/kenzhang87-cpu/networth-tracker/internal/utils/chartscale"
)

// seriesService implements the SeriesSvcFacade interface. Every view is
// rebuilt from the raw balance rows on each call; correctness over
// incremental performance is the deliberate tradeoff.
type seriesService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	balanceRepo portsrepo.BalanceReader
}

// NewSeriesService creates a new time-series service
func NewSeriesService(accountRepo portsrepo.AccountReader, balanceRepo portsrepo.BalanceReader) portssvc.SeriesSvcFacade {
	return &seriesService{accountRepo: accountRepo, balanceRepo: balanceRepo}
}

// Ensure seriesService implements the SeriesSvcFacade interface
var _ portssvc.SeriesSvcFacade = (*seriesService)(nil)

func (s *seriesService) NetWorthSeries(ctx context.Context, userID string) ([]domain.TimeSeriesPoint, chartscale.Scale, error) {
	entries, accounts, err := s.load(ctx, userID)
	if err != nil {
		return nil, chartscale.Scale{}, err
	}

	points := BuildTimeSeries(entries, accounts)
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.NetWorth.InexactFloat64()
	}
	return points, chartscale.NetWorth(values), nil
}

func (s *seriesService) CategoryRollup(ctx context.Context, userID string) ([]domain.CategoryRollupRow, []time.Time, chartscale.Scale, error) {
	entries, accounts, err := s.load(ctx, userID)
	if err != nil {
		return nil, nil, chartscale.Scale{}, err
	}

	rows := BuildCategoryRollup(entries, accounts)
	s.checkNetWorthInvariant(ctx, entries, accounts, rows)

	var positives, negatives []float64
	for _, row := range rows {
		pos, neg := decimal.Zero, decimal.Zero
		for _, sum := range row.Categories {
			if sum.IsNegative() {
				neg = neg.Add(sum)
			} else {
				pos = pos.Add(sum)
			}
		}
		positives = append(positives, pos.InexactFloat64())
		negatives = append(negatives, neg.InexactFloat64())
	}

	ticks := monthTicks(rows)
	return rows, ticks, chartscale.Stacked(positives, negatives), nil
}

func (s *seriesService) load(ctx context.Context, userID string) ([]domain.BalanceEntry, []domain.Account, error) {
	entries, err := s.balanceRepo.ListBalances(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances for series")
		return nil, nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for series")
		return nil, nil, err
	}
	return entries, accounts, nil
}

// checkNetWorthInvariant compares the raw per-date net worth (flat sum of
// stored balances) against the rollup's signed-category sum. The two are
// computed by independent paths and agree only while entry-level signs
// follow the storage convention; a mismatch is logged rather than trusted
// silently.
func (s *seriesService) checkNetWorthInvariant(ctx context.Context, entries []domain.BalanceEntry, accounts []domain.Account, rows []domain.CategoryRollupRow) {
	points := BuildTimeSeries(entries, accounts)
	raw := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		raw[p.Date] = p.NetWorth
	}
	for _, row := range rows {
		if rawNet, ok := raw[row.Date]; ok && !rawNet.Equal(row.NetWorth) {
			s.LogWarn(ctx, "Raw and rollup net worth diverge",
				slog.String("date", row.Date),
				slog.String("raw", rawNet.String()),
				slog.String("rollup", row.NetWorth.String()))
		}
	}
}

// BuildTimeSeries reconstructs the dense per-date view from the sparse
// balance grid. Rows are grouped by canonical date, each date carrying a
// map from account name to balance (last write wins on duplicates, which
// the storage uniqueness constraint should prevent). NetWorth is the raw
// sum of every balance present at the date. Output is sorted ascending by
// timestamp.
func BuildTimeSeries(entries []domain.BalanceEntry, accounts []domain.Account) []domain.TimeSeriesPoint {
	nameByID := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		nameByID[acc.AccountID] = acc.Name
	}

	byDate := make(map[string]*domain.TimeSeriesPoint)
	var order []string
	for _, e := range entries {
		p, ok := byDate[e.Date]
		if !ok {
			p = &domain.TimeSeriesPoint{
				Date:              e.Date,
				Timestamp:         dateutil.ToTimestamp(e.Date),
				PerAccountBalance: make(map[string]decimal.Decimal),
			}
			byDate[e.Date] = p
			order = append(order, e.Date)
		}
		name := nameByID[e.AccountID]
		if name == "" {
			name = e.AccountID
		}
		p.PerAccountBalance[name] = e.Balance
	}

	points := make([]domain.TimeSeriesPoint, 0, len(order))
	for _, date := range order {
		p := byDate[date]
		net := decimal.Zero
		for _, balance := range p.PerAccountBalance {
			net = net.Add(balance)
		}
		p.NetWorth = net
		points = append(points, *p)
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Timestamp < points[j].Timestamp })
	return points
}

// BuildCategoryRollup aggregates balances per fixed category per date.
// Accounts missing a category mapping default to "other". Liability
// category sums are written as the negative of their absolute magnitude so
// liabilities stack below the zero baseline; NetWorth is the sum of the
// signed category sums, which equals assets minus liabilities. Output is
// sorted ascending by timestamp.
func BuildCategoryRollup(entries []domain.BalanceEntry, accounts []domain.Account) []domain.CategoryRollupRow {
	categoryByID := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		categoryByID[acc.AccountID] = acc.Category
	}

	byDate := make(map[string]map[string]decimal.Decimal)
	var order []string
	for _, e := range entries {
		sums, ok := byDate[e.Date]
		if !ok {
			sums = make(map[string]decimal.Decimal)
			for _, cat := range domain.AssetCategories {
				sums[cat] = decimal.Zero
			}
			for _, cat := range domain.LiabilityCategories {
				sums[cat] = decimal.Zero
			}
			byDate[e.Date] = sums
			order = append(order, e.Date)
		}
		category := categoryByID[e.AccountID]
		if category == "" {
			category = domain.CategoryOther
		}
		if _, known := sums[category]; !known {
			// Free-form categories outside the fixed vocabulary roll
			// into the default asset bucket.
			category = domain.CategoryOther
		}
		sums[category] = sums[category].Add(e.Balance)
	}

	rows := make([]domain.CategoryRollupRow, 0, len(order))
	for _, date := range order {
		sums := byDate[date]
		row := domain.CategoryRollupRow{
			Date:       date,
			Timestamp:  dateutil.ToTimestamp(date),
			Categories: make(map[string]decimal.Decimal, len(sums)),
		}
		net := decimal.Zero
		for cat, sum := range sums {
			if domain.IsLiabilityCategory(cat) {
				sum = sum.Abs().Neg()
			}
			row.Categories[cat] = sum
			net = net.Add(sum)
		}
		row.NetWorth = net
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Timestamp < rows[j].Timestamp })
	return rows
}

// monthTicks returns the month-boundary x-axis ticks spanning the rollup's
// date range.
func monthTicks(rows []domain.CategoryRollupRow) []time.Time {
	if len(rows) == 0 {
		return nil
	}
	min := time.UnixMilli(rows[0].Timestamp).UTC()
	max := time.UnixMilli(rows[len(rows)-1].Timestamp).UTC()
	return dateutil.MonthStarts(min, max)
}
