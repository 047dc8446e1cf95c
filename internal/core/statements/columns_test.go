package statements_test

import (
	"testing"

	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/greekrode/erpnext/internal/core/statements"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColumns(t *testing.T) {
	periods := twoPeriods()

	withCompany := statements.BuildColumns(domain.Monthly, periods, false, "acme")
	require.Len(t, withCompany, 4)
	assert.Equal(t, "account_name", withCompany[0].Fieldname)
	assert.Equal(t, "Data", withCompany[0].Fieldtype)
	assert.Equal(t, 350, withCompany[0].Width)
	assert.True(t, withCompany[1].Hidden)
	assert.Equal(t, "Currency", withCompany[1].Options)
	assert.Equal(t, "apr_2024", withCompany[2].Fieldname)
	assert.Equal(t, "Apr 2024", withCompany[2].Label)
	assert.Equal(t, "Currency", withCompany[2].Fieldtype)
	assert.Equal(t, 250, withCompany[2].Width)

	withoutCompany := statements.BuildColumns(domain.Monthly, periods, false, "")
	require.Len(t, withoutCompany, 3)
	assert.Equal(t, "apr_2024", withoutCompany[1].Fieldname)
}

func TestFinalizeRowsZeroFillsMissingPeriods(t *testing.T) {
	periods := twoPeriods()
	rows := []domain.AccountRow{
		{Account: "Cash", AccountName: "Cash", Values: map[string]decimal.Decimal{"apr_2024": decimal.NewFromInt(5)}},
		{}, // blank spacer stays blank
	}

	out := statements.FinalizeRows(rows, periods)

	require.Len(t, out, 2)
	v, ok := out[0].Values["may_2024"]
	require.True(t, ok, "missing period keys get explicit zeros")
	assert.True(t, v.IsZero())
	assert.True(t, out[1].IsBlank())
	assert.Nil(t, out[1].Values)
}
