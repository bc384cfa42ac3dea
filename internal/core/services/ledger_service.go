package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	portsrepo "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/repositories"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dateutil"
	"github.com/kenzhang87-cpu/networth-tracker/internal/ledger"
	"github.com/kenzhang87-cpu/networth-tracker/internal/utils/batch"
)

// Batch sizes bound the number of concurrent store operations per phase.
// Deletes tolerate a larger batch since they are idempotent and
// order-independent.
const (
	accountBatchSize = 10
	deleteBatchSize  = 100
	upsertBatchSize  = 10
)

// ledgerService implements the LedgerSvcFacade interface. Import replaces
// the full balance history from the uploaded file: the file is the source
// of truth, not the stored history. There is no retry layer anywhere in the
// flow; a failed operation is counted and reported, never masked.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	balanceRepo portsrepo.BalanceRepositoryFacade
}

// NewLedgerService creates a new ledger import/export service
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, balanceRepo portsrepo.BalanceRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{accountRepo: accountRepo, balanceRepo: balanceRepo}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// desiredAccount is the resolved metadata for one unique account name
// referenced by the import, keyed case-insensitively.
type desiredAccount struct {
	name     string // casing of the first reference in the file
	category string // explicit CSV category, "" when none given
	typ      domain.AccountType
}

func (s *ledgerService) ImportLedger(ctx context.Context, userID string, text string) (domain.ImportSummary, error) {
	parsed := ledger.Parse(text)
	summary := domain.ImportSummary{Failed: parsed.Rejected}
	if parsed.Rejected > 0 {
		s.LogWarn(ctx, "Dropped unparsable ledger rows", slog.Int("rejected", parsed.Rejected))
	}

	if err := s.reconcileAccounts(ctx, userID, parsed.Records); err != nil {
		return summary, err
	}

	imported, failed, err := s.reconcileBalances(ctx, userID, parsed.Records)
	if err != nil {
		return summary, err
	}
	summary.Imported = imported
	summary.Failed += failed

	s.LogInfo(ctx, "Ledger import completed",
		slog.Int("imported", summary.Imported),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

// reconcileAccounts diffs the account names referenced by the import
// against the stored set and issues create/update operations in bounded
// batches. Import never deletes accounts. Individual operation failures are
// logged and skipped; the corresponding balance writes surface as failures
// later because the account id never materializes.
func (s *ledgerService) reconcileAccounts(ctx context.Context, userID string, records []domain.ImportRecord) error {
	if len(records) == 0 {
		return nil
	}

	existing, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list accounts for import: %w", err)
	}
	existingByName := make(map[string]domain.Account, len(existing))
	for _, acc := range existing {
		existingByName[strings.ToLower(acc.Name)] = acc
	}

	desired := make(map[string]*desiredAccount)
	order := make([]string, 0)
	for _, rec := range records {
		name := strings.TrimSpace(rec.Account)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		d, ok := desired[key]
		if !ok {
			d = &desiredAccount{name: name}
			desired[key] = d
			order = append(order, key)
		}
		if rec.Category != "" {
			d.category = rec.Category
		}
		if rec.Type != "" {
			d.typ = rec.Type
		}
	}

	now := time.Now()
	var creates, updates []batch.Task
	for _, key := range order {
		d := desired[key]
		category := s.resolveCategory(d, existingByName[key])

		cur, exists := existingByName[key]
		if !exists {
			account := domain.Account{
				AccountID: uuid.NewString(),
				UserID:    userID,
				Name:      d.name,
				Category:  category,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			}
			creates = append(creates, func(ctx context.Context) error {
				return s.accountRepo.SaveAccount(ctx, account)
			})
			continue
		}
		if cur.Category != category {
			updated := cur
			updated.Category = category
			updated.LastUpdatedAt = now
			updates = append(updates, func(ctx context.Context) error {
				return s.accountRepo.UpdateAccount(ctx, updated)
			})
		}
	}

	for _, err := range batch.Run(ctx, accountBatchSize, creates) {
		if err != nil {
			s.LogError(ctx, err, "Failed to create account during import")
		}
	}
	for _, err := range batch.Run(ctx, accountBatchSize, updates) {
		if err != nil {
			s.LogError(ctx, err, "Failed to update account during import")
		}
	}
	return nil
}

// resolveCategory applies the import precedence: explicit CSV category,
// then the existing account's category, then the default for the resolved
// type (itself CSV type first, category-implied second, asset last).
func (s *ledgerService) resolveCategory(d *desiredAccount, existing domain.Account) string {
	if d.category != "" {
		return d.category
	}
	if existing.Category != "" {
		return existing.Category
	}
	typ := d.typ
	if typ == "" {
		typ = domain.Asset
	}
	return domain.DefaultCategoryForType(typ)
}

// reconcileBalances replaces the full balance history with the imported
// set: every stored entry is deleted in bounded batches, then the surviving
// records are upserted in bounded batches. Each operation's outcome is
// collected independently so one bad row never fails its batch-mates.
func (s *ledgerService) reconcileBalances(ctx context.Context, userID string, records []domain.ImportRecord) (imported, failed int, err error) {
	current, err := s.balanceRepo.ListBalances(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list balances for import: %w", err)
	}

	deletes := make([]batch.Task, len(current))
	for i, entry := range current {
		id := entry.BalanceID
		deletes[i] = func(ctx context.Context) error {
			return s.balanceRepo.DeleteBalance(ctx, id)
		}
	}
	for _, derr := range batch.Run(ctx, deleteBatchSize, deletes) {
		if derr != nil {
			s.LogError(ctx, derr, "Failed to delete stored balance during import")
		}
	}

	// Accounts are re-listed after reconciliation so freshly created ids
	// are visible. A name absent here means its create failed; its rows
	// are counted as failures without a store call.
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list accounts for balance import: %w", err)
	}
	idByName := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		idByName[strings.ToLower(acc.Name)] = acc.AccountID
	}

	now := time.Now()
	var upserts []batch.Task
	for _, rec := range records {
		name := strings.TrimSpace(rec.Account)
		if name == "" || dateutil.ToTimestamp(rec.Date) == 0 {
			failed++
			continue
		}
		accountID, ok := idByName[strings.ToLower(name)]
		if !ok {
			s.LogWarn(ctx, "Skipping balance row for unresolved account", slog.String("account_name", name))
			failed++
			continue
		}
		entry := domain.BalanceEntry{
			BalanceID: uuid.NewString(),
			UserID:    userID,
			AccountID: accountID,
			Date:      rec.Date,
			Balance:   rec.Balance,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		upserts = append(upserts, func(ctx context.Context) error {
			return s.balanceRepo.UpsertBalance(ctx, entry)
		})
	}

	for _, uerr := range batch.Run(ctx, upsertBatchSize, upserts) {
		if uerr != nil {
			s.LogError(ctx, uerr, "Failed to write balance during import")
			failed++
			continue
		}
		imported++
	}
	return imported, failed, nil
}

func (s *ledgerService) ExportLedger(ctx context.Context, userID string) (string, error) {
	entries, err := s.balanceRepo.ListBalances(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to list balances for export: %w", err)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to list accounts for export: %w", err)
	}

	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}
	return ledger.Export(entries, byID), nil
}
