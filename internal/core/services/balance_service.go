package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kenzhang87-cpu/networth-tracker/internal/apperrors"
	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	portsrepo "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/repositories"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dateutil"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
)

// balanceService implements the BalanceSvcFacade interface
type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewBalanceService creates a new balance service
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.BalanceSvcFacade {
	return &balanceService{balanceRepo: balanceRepo, accountRepo: accountRepo}
}

// Ensure balanceService implements the BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) ListBalances(ctx context.Context, userID string) ([]domain.BalanceEntry, error) {
	entries, err := s.balanceRepo.ListBalances(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances")
		return nil, err
	}
	return entries, nil
}

func (s *balanceService) UpsertBalance(ctx context.Context, req dto.UpsertBalanceRequest, userID string) (*domain.BalanceEntry, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	date := dateutil.Canonicalize(req.Date)
	if dateutil.ToTimestamp(date) == 0 {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.BalanceEntry{
		BalanceID: uuid.NewString(),
		UserID:    userID,
		AccountID: req.AccountID,
		Date:      date,
		Balance:   req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.balanceRepo.UpsertBalance(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to upsert balance",
			slog.String("account_id", req.AccountID),
			slog.String("date", date))
		return nil, err
	}
	return &entry, nil
}

func (s *balanceService) DeleteBalance(ctx context.Context, balanceID string, userID string) error {
	entries, err := s.balanceRepo.ListBalances(ctx, userID)
	if err != nil {
		return err
	}
	owned := false
	for _, e := range entries {
		if e.BalanceID == balanceID {
			owned = true
			break
		}
	}
	if !owned {
		return apperrors.ErrNotFound
	}
	if err := s.balanceRepo.DeleteBalance(ctx, balanceID); err != nil {
		s.LogError(ctx, err, "Failed to delete balance", slog.String("balance_id", balanceID))
		return err
	}
	return nil
}
