package dto

import (
	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
)

// ImportLedgerResponse reports a completed ledger import. Partial failure
// is an expected outcome and both counts are always present.
type ImportLedgerResponse struct {
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
	Message  string `json:"message"`
}

// ToImportLedgerResponse converts a domain.ImportSummary to its DTO.
func ToImportLedgerResponse(s domain.ImportSummary) ImportLedgerResponse {
	return ImportLedgerResponse{
		Imported: s.Imported,
		Failed:   s.Failed,
		Message:  s.Message(),
	}
}
