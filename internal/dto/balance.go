package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
)

// UpsertBalanceRequest records one (account, date) snapshot. The date
// accepts any of the flexible input layouts and is canonicalized on write.
type UpsertBalanceRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Date      string          `json:"date" binding:"required"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceResponse defines the data returned for a balance entry.
type BalanceResponse struct {
	BalanceID string          `json:"balanceID"`
	AccountID string          `json:"accountID"`
	Date      string          `json:"date"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToBalanceResponse converts a domain.BalanceEntry to BalanceResponse DTO
func ToBalanceResponse(e *domain.BalanceEntry) BalanceResponse {
	return BalanceResponse{
		BalanceID: e.BalanceID,
		AccountID: e.AccountID,
		Date:      e.Date,
		Balance:   e.Balance,
	}
}

// ToListBalanceResponse converts a slice of domain.BalanceEntry to response DTOs
func ToListBalanceResponse(entries []domain.BalanceEntry) []BalanceResponse {
	res := make([]BalanceResponse, len(entries))
	for i, e := range entries {
		res[i] = ToBalanceResponse(&e)
	}
	return res
}
