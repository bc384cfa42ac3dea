// Package ledger reads and writes the delimited-text ledger format used by
// bulk import and export. The reader tolerates the historical 3- and
// 4-column layouts alongside the canonical 5-column form; the writer always
// emits the canonical form.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dateutil"
)

// Column layouts recognized in a header row, lower-cased.
var headerShapes = [][]string{
	{"date", "account", "category", "type", "balance"},
	{"date", "account", "type", "balance"},
	{"date", "account", "balance"},
}

// ParseResult carries the surviving records plus the count of rows that
// were dropped. Record order matches input order; callers must not assume
// date ordering.
type ParseResult struct {
	Records  []domain.ImportRecord
	Rejected int
}

// Parse reads raw comma-delimited ledger text. Blank lines are skipped. A
// first row whose lower-cased columns match one of the known header shapes
// is treated as a header; otherwise line 1 is data. A row is dropped (and
// counted) when it has fewer than 3 columns, is missing date, account or
// balance, or its balance does not parse as a number after stripping "$"
// and thousands separators.
func Parse(text string) ParseResult {
	var res ParseResult

	lines := make([]string, 0, 64)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return res
	}

	headerCols := 0
	if cols := detectHeader(lines[0]); cols > 0 {
		headerCols = cols
		lines = lines[1:]
	}

	for _, line := range lines {
		rec, ok := parseLine(line, headerCols)
		if !ok {
			res.Rejected++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// detectHeader returns the column count of a matched header shape, or 0.
func detectHeader(line string) int {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(f))
	}
	for _, shape := range headerShapes {
		if len(fields) == len(shape) {
			match := true
			for i := range shape {
				if fields[i] != shape[i] {
					match = false
					break
				}
			}
			if match {
				return len(shape)
			}
		}
	}
	return 0
}

func parseLine(line string, headerCols int) (domain.ImportRecord, bool) {
	cols := strings.Split(line, ",")
	for i, c := range cols {
		cols[i] = strings.TrimSpace(c)
	}
	if len(cols) < 3 {
		return domain.ImportRecord{}, false
	}

	shape := headerCols
	if shape == 0 {
		switch {
		case len(cols) >= 5:
			shape = 5
		case len(cols) == 4:
			shape = 4
		default:
			shape = 3
		}
	}

	var date, account, category, typ, balance string
	switch shape {
	case 5:
		date, account = cols[0], cols[1]
		if len(cols) > 2 {
			category = cols[2]
		}
		if len(cols) > 3 {
			typ = cols[3]
		}
		balance = joinTail(cols, 4)
	case 4:
		date, account = cols[0], cols[1]
		typ = cols[2]
		balance = joinTail(cols, 3)
	default:
		date, account = cols[0], cols[1]
		balance = joinTail(cols, 2)
	}

	if date == "" || account == "" || balance == "" {
		return domain.ImportRecord{}, false
	}

	amount, err := decimal.NewFromString(cleanBalance(balance))
	if err != nil {
		return domain.ImportRecord{}, false
	}

	return domain.ImportRecord{
		Date:     dateutil.Canonicalize(date),
		Account:  account,
		Category: normalizeCategory(category),
		Type:     normalizeType(typ),
		Balance:  amount,
	}, true
}

// joinTail re-joins every column from idx onward into the balance field.
// Naive comma splitting breaks a balance written with thousands separators
// ("1,234.56") into surplus columns; re-joining restores the original value
// before cleaning.
func joinTail(cols []string, idx int) string {
	if idx >= len(cols) {
		return ""
	}
	return strings.Join(cols[idx:], ",")
}

func cleanBalance(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// normalizeCategory lower-cases and trims a category token. The empty
// string is preserved so reconciliation can apply its own precedence rules.
func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeType prefix-matches "liab"/"asset" case-insensitively; anything
// else maps to the empty type.
func normalizeType(s string) domain.AccountType {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(t, "liab"):
		return domain.Liability
	case strings.HasPrefix(t, "asset"):
		return domain.Asset
	default:
		return ""
	}
}
