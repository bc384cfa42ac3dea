package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ImportRecord is one parsed ledger row. It is transient: it exists only to
// drive account and balance reconciliation and is never persisted.
type ImportRecord struct {
	Date     string // canonical "YYYY-MM-DD" (or the raw value when unparsable)
	Account  string
	Category string      // lowercase, "" when the row carried none
	Type     AccountType // "" when the row carried none
	Balance  decimal.Decimal
}

// ImportSummary reports the outcome of a ledger import. Imports are not
// all-or-nothing: partial success is an accepted outcome, so both counts
// must always be surfaced to the caller.
type ImportSummary struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// Message renders the caller-visible status line. It never reports
// unconditional success while any row failed.
func (s ImportSummary) Message() string {
	if s.Failed == 0 {
		return fmt.Sprintf("Imported %d rows.", s.Imported)
	}
	return fmt.Sprintf("Imported %d rows. %d failed", s.Imported, s.Failed)
}
