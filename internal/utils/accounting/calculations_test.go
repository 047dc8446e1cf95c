package accounting_test

import (
	"testing"

	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/greekrode/erpnext/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedBalance(t *testing.T) {
	debit := decimal.NewFromInt(120)
	credit := decimal.NewFromInt(50)

	assert.True(t, accounting.SignedBalance(debit, credit, domain.Debit).Equal(decimal.NewFromInt(70)))
	assert.True(t, accounting.SignedBalance(debit, credit, domain.Credit).Equal(decimal.NewFromInt(-70)))

	// Contra balance: a credit surplus on a debit-normal account goes negative.
	assert.True(t, accounting.SignedBalance(decimal.NewFromInt(10), decimal.NewFromInt(40), domain.Debit).Equal(decimal.NewFromInt(-30)))
}

func TestNormalSideOf(t *testing.T) {
	assert.Equal(t, domain.Debit, accounting.NormalSideOf(domain.Asset))
	assert.Equal(t, domain.Debit, accounting.NormalSideOf(domain.Expense))
	assert.Equal(t, domain.Credit, accounting.NormalSideOf(domain.Liability))
	assert.Equal(t, domain.Credit, accounting.NormalSideOf(domain.Equity))
	assert.Equal(t, domain.Credit, accounting.NormalSideOf(domain.Income))
}
