// Package statements implements the aggregation engine behind the balance
// sheet and profit & loss reports: it folds categorized per-account period
// balances into the hierarchical subtotals, balancing figures and
// presentation metadata of a finished statement. Everything in this package
// is a pure function over the row sequences produced by the ledger
// repository; the only inputs it ever mutates are the maps it allocated
// itself.
package statements

import (
	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumValues returns the sum of a period key's value across a sequence of
// account rows. A nil or empty sequence sums to zero, as does a row that
// carries no value for the key; malformed input is never an error here.
func SumValues(rows []domain.AccountRow, key string) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Value(key))
	}
	return total
}

// rowValue reads a period value from a possibly-suppressed subtotal row.
func rowValue(row *domain.AccountRow, key string) decimal.Decimal {
	if row == nil {
		return decimal.Zero
	}
	return row.Value(key)
}

// newTotalRow seeds a synthesized subtotal row. Callers fill Values in
// period-list order and accumulate Total as they go.
func newTotalRow(label, currency string) *domain.AccountRow {
	return &domain.AccountRow{
		Account:        label,
		AccountName:    label,
		Currency:       currency,
		WarnIfNegative: true,
		Values:         make(map[string]decimal.Decimal),
	}
}

// sectionRow builds a group header line such as "Current Assets".
func sectionRow(label string, rootType domain.RootType) domain.AccountRow {
	return domain.AccountRow{
		Account:     label,
		AccountName: label,
		RootType:    rootType,
		IsGroup:     true,
		Indent:      1,
		HasValue:    true,
	}
}
