package models

import "github.com/shopspring/decimal"

// BalanceEntry is the database representation of one (account, date)
// balance snapshot. The date column is a SQL DATE; uniqueness over
// (account_id, date) is enforced by the schema.
type BalanceEntry struct {
	BalanceID string          `db:"balance_id"`
	UserID    string          `db:"user_id"`
	AccountID string          `db:"account_id"`
	Date      string          `db:"date"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
