package domain

import "github.com/shopspring/decimal"

// BalanceEntry is one (account, date) snapshot of an account's balance.
// At most one entry exists per account and date; a later write for the same
// pair overwrites the value. Liabilities are stored as positive magnitudes;
// sign flipping happens only in the rollup view.
type BalanceEntry struct {
	BalanceID string          `json:"balanceID"`
	UserID    string          `json:"userID"`
	AccountID string          `json:"accountID"`
	Date      string          `json:"date"` // canonical "YYYY-MM-DD"
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}
