package repositories

import (
	"context"

	"github.com/greekrode/erpnext/internal/core/domain"
)

// LedgerQuery selects one categorized row sequence from the general ledger.
type LedgerQuery struct {
	Company    string
	RootType   domain.RootType
	NormalSide domain.NormalSide
	Periods    []domain.PeriodDescriptor

	// SubAccountType restricts the fetch to one balance sheet bucket,
	// e.g. "Receivable Account". Empty means the whole root type.
	SubAccountType domain.SubAccountType

	// AccountType restricts a profit & loss fetch to one tagged bucket,
	// e.g. "Other Income Account".
	AccountType domain.SubAccountType

	// ExcludeAccountTypes drops tagged buckets from an otherwise broad
	// fetch, so income rows are never double counted against the
	// other-income sequence.
	ExcludeAccountTypes []domain.SubAccountType

	// COGSOnly restricts an expense fetch to cost of goods sold accounts.
	COGSOnly bool

	// IgnoreClosingEntries drops period closing vouchers, which would
	// otherwise zero out the profit & loss figures of closed years.
	IgnoreClosingEntries bool

	// AccumulatedValues makes every period value a running balance up to
	// that period's end instead of the discrete period movement.
	AccumulatedValues bool
}

// LedgerRepository is the ledger data provider: it returns the ordered
// per-account row sequence for a query, group rows interleaved for the
// report assembler, with the opening balance carried on the final total
// row of the sequence.
type LedgerRepository interface {
	GetRows(ctx context.Context, query LedgerQuery) ([]domain.AccountRow, error)
}
