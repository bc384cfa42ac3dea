package services

import (
	"context"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
)

// BalanceReaderSvc defines read operations for balance snapshot data
type BalanceReaderSvc interface {
	// ListBalances retrieves all balance entries owned by the user.
	ListBalances(ctx context.Context, userID string) ([]domain.BalanceEntry, error)
}

// BalanceWriterSvc defines write operations for balance snapshot data
type BalanceWriterSvc interface {
	// UpsertBalance records one (account, date) snapshot, overwriting any
	// existing value for the pair.
	UpsertBalance(ctx context.Context, req dto.UpsertBalanceRequest, userID string) (*domain.BalanceEntry, error)

	// DeleteBalance removes a single balance entry, verifying ownership.
	DeleteBalance(ctx context.Context, balanceID string, userID string) error
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
