package services

import (
	"context"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
)

// LedgerSvcFacade drives bulk ledger import and export. Import reconciles
// the uploaded file against the stored accounts and balances with
// full-replace semantics; partial success is an accepted outcome and is
// reported precisely in the summary.
type LedgerSvcFacade interface {
	// ImportLedger parses delimited ledger text and reconciles accounts and
	// balances for the user. It always runs to completion; row-level and
	// network-level failures are counted, never retried.
	ImportLedger(ctx context.Context, userID string, text string) (domain.ImportSummary, error)

	// ExportLedger writes the user's full balance history in the canonical
	// 5-column ledger form.
	ExportLedger(ctx context.Context, userID string) (string, error)
}
