package ledger

import (
	"sort"
	"strings"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dateutil"
)

const exportHeader = "date,account,category,type,balance"

// Export writes the canonical 5-column ledger form: one row per
// (date, account) pair, dates in M/D/YY display form, sorted by ascending
// date. Accounts missing from the map fall back to the default category.
func Export(entries []domain.BalanceEntry, accounts map[string]domain.Account) string {
	rows := make([]domain.BalanceEntry, len(entries))
	copy(rows, entries)
	sort.SliceStable(rows, func(i, j int) bool {
		return dateutil.ToTimestamp(rows[i].Date) < dateutil.ToTimestamp(rows[j].Date)
	})

	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteString("\n")
	for _, e := range rows {
		category := domain.CategoryOther
		name := e.AccountID
		if acc, ok := accounts[e.AccountID]; ok {
			category = acc.Category
			name = acc.Name
		}
		b.WriteString(dateutil.DisplayMDY(e.Date))
		b.WriteString(",")
		b.WriteString(name)
		b.WriteString(",")
		b.WriteString(category)
		b.WriteString(",")
		b.WriteString(string(domain.TypeForCategory(category)))
		b.WriteString(",")
		b.WriteString(e.Balance.String())
		b.WriteString("\n")
	}
	return b.String()
}
