package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kenzhang87-cpu/networth-tracker/internal/apperrors"
	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	portsrepo "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/repositories"
	"github.com/kenzhang87-cpu/networth-tracker/internal/models"
)

type PgxBalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new repository for balance snapshot data.
func NewBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{pool: pool}
}

// Ensure PgxBalanceRepository implements portsrepo.BalanceRepositoryFacade
var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

func toDomainBalance(m models.BalanceEntry) domain.BalanceEntry {
	return domain.BalanceEntry{
		BalanceID: m.BalanceID,
		UserID:    m.UserID,
		AccountID: m.AccountID,
		Date:      m.Date,
		Balance:   m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ListBalances retrieves every balance entry owned by a user. Dates come
// back in canonical ISO form.
func (r *PgxBalanceRepository) ListBalances(ctx context.Context, userID string) ([]domain.BalanceEntry, error) {
	query := `
		SELECT balance_id, user_id, account_id, date, balance, created_at, last_updated_at
		FROM balances
		WHERE user_id = $1
		ORDER BY date, account_id;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances for user %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []domain.BalanceEntry
	for rows.Next() {
		var m models.BalanceEntry
		var date time.Time
		if err := rows.Scan(
			&m.BalanceID,
			&m.UserID,
			&m.AccountID,
			&date,
			&m.Balance,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		m.Date = date.Format("2006-01-02")
		entries = append(entries, toDomainBalance(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading balance rows: %w", err)
	}
	return entries, nil
}

// UpsertBalance inserts a balance entry; a conflicting (account_id, date)
// pair overwrites the stored value instead of duplicating the row.
func (r *PgxBalanceRepository) UpsertBalance(ctx context.Context, entry domain.BalanceEntry) error {
	query := `
		INSERT INTO balances (balance_id, user_id, account_id, date, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id, date)
		DO UPDATE SET balance = EXCLUDED.balance, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		entry.BalanceID,
		entry.UserID,
		entry.AccountID,
		entry.Date,
		entry.Balance,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// A foreign key violation means the referenced account never
			// materialized (its create failed during import).
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, entry.AccountID)
			}
			if pgErr.Code == uniqueViolationCode {
				return fmt.Errorf("%w: balance for account %s on %s", apperrors.ErrDuplicate, entry.AccountID, entry.Date)
			}
		}
		return fmt.Errorf("failed to upsert balance for account %s on %s: %w", entry.AccountID, entry.Date, err)
	}
	return nil
}

// DeleteBalance removes a single balance entry by id. Deleting an already
// absent row is not an error; deletes are idempotent.
func (r *PgxBalanceRepository) DeleteBalance(ctx context.Context, balanceID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM balances WHERE balance_id = $1;`, balanceID)
	if err != nil {
		return fmt.Errorf("failed to delete balance %s: %w", balanceID, err)
	}
	return nil
}
