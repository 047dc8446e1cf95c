// Package accounting holds the debit/credit sign conventions shared by the
// ledger repository and the statement services.
package accounting

import (
	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance nets raw debit and credit totals onto an account's normal
// side: debit-normal accounts report debit minus credit, credit-normal
// accounts the reverse. Contra accounts (e.g. accumulated depreciation held
// on the debit side) naturally come out negative.
func SignedBalance(debit, credit decimal.Decimal, side domain.NormalSide) decimal.Decimal {
	if side == domain.Credit {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// NormalSideOf returns the side a root type's balance normally sits on.
func NormalSideOf(rootType domain.RootType) domain.NormalSide {
	switch rootType {
	case domain.Liability, domain.Equity, domain.Income:
		return domain.Credit
	default:
		return domain.Debit
	}
}
