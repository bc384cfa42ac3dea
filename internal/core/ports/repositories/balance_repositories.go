package repositories

import (
	"context"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
)

// BalanceReader defines read operations for balance snapshot data
type BalanceReader interface {
	// ListBalances retrieves all balance entries owned by a user.
	ListBalances(ctx context.Context, userID string) ([]domain.BalanceEntry, error)
}

// BalanceWriter defines write operations for balance snapshot data
type BalanceWriter interface {
	// UpsertBalance inserts a balance entry, overwriting any existing entry
	// for the same (account, date) pair.
	UpsertBalance(ctx context.Context, entry domain.BalanceEntry) error

	// DeleteBalance removes a single balance entry by id.
	DeleteBalance(ctx context.Context, balanceID string) error
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
