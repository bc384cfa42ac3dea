package models

// Account is the database representation of a financial account.
type Account struct {
	AccountID string `db:"account_id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Category  string `db:"category"`
	AuditFields
}
