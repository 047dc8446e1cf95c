package statements_test

import (
	"testing"

	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/greekrode/erpnext/internal/core/statements"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPeriods() []domain.PeriodDescriptor {
	return []domain.PeriodDescriptor{
		{Key: "apr_2024", Label: "Apr 2024"},
		{Key: "may_2024", Label: "May 2024"},
	}
}

// seq builds a single-row sequence with the given per-period values.
func seq(account string, values map[string]int64) []domain.AccountRow {
	row := domain.AccountRow{Account: account, AccountName: account, HasValue: true}
	for key, v := range values {
		row.SetValue(key, decimal.NewFromInt(v))
	}
	return []domain.AccountRow{row}
}

func withOpening(rows []domain.AccountRow, opening string) []domain.AccountRow {
	rows[len(rows)-1].OpeningBalance = decimal.RequireFromString(opening)
	return rows
}

func balancedSheetRows() statements.BalanceSheetRows {
	return statements.BalanceSheetRows{
		CashEquivalents:         seq("Cash", map[string]int64{"apr_2024": 100, "may_2024": 110}),
		Receivables:             seq("Debtors", map[string]int64{"apr_2024": 50, "may_2024": 60}),
		Inventory:               seq("Stock", map[string]int64{"apr_2024": 40, "may_2024": 40}),
		OtherCurrentAssets:      seq("Prepaid", map[string]int64{"apr_2024": 10, "may_2024": 10}),
		FixedAssets:             seq("Plant", map[string]int64{"apr_2024": 200, "may_2024": 200}),
		AccumulatedDepreciation: seq("Acc Dep", map[string]int64{"apr_2024": -20, "may_2024": -25}),
		Payables:                seq("Creditors", map[string]int64{"apr_2024": 80, "may_2024": 85}),
		OtherCurrentLiabilities: seq("Taxes", map[string]int64{"apr_2024": 20, "may_2024": 20}),
		Equity: append(
			seq("Capital", map[string]int64{"apr_2024": 250, "may_2024": 260}),
			domain.AccountRow{Account: "'Total Equity (Credit)'", AccountName: "Total Equity (Credit)", HasValue: true},
		),
	}
}

func TestProvisionalProfitLoss(t *testing.T) {
	periods := twoPeriods()
	profitLoss, totalCredit := statements.ProvisionalProfitLoss(balancedSheetRows(), periods, "INR")

	require.NotNil(t, profitLoss)
	// apr: assets 380 vs payables+other liabilities+equity 350
	assert.True(t, profitLoss.Values["apr_2024"].Equal(decimal.NewFromInt(30)))
	assert.True(t, profitLoss.Values["may_2024"].Equal(decimal.NewFromInt(30)))
	assert.True(t, profitLoss.Total.Equal(decimal.NewFromInt(60)), "running total accumulates in period order")

	// The check row re-derives the asset side from the credit side.
	require.NotNil(t, totalCredit)
	assert.True(t, totalCredit.Values["apr_2024"].Equal(decimal.NewFromInt(380)))
	assert.True(t, totalCredit.Values["may_2024"].Equal(decimal.NewFromInt(395)))
}

func TestProvisionalProfitLossSuppressedWhenBalanced(t *testing.T) {
	rows := statements.BalanceSheetRows{
		CashEquivalents: seq("Cash", map[string]int64{"apr_2024": 100, "may_2024": 100}),
		Equity:          seq("Capital", map[string]int64{"apr_2024": 100, "may_2024": 100}),
	}

	profitLoss, totalCredit := statements.ProvisionalProfitLoss(rows, twoPeriods(), "INR")
	assert.Nil(t, profitLoss, "all-zero figure never renders")
	require.NotNil(t, totalCredit)
	assert.True(t, totalCredit.Values["apr_2024"].Equal(decimal.NewFromInt(100)))
}

func TestOrganizeEquity(t *testing.T) {
	periods := twoPeriods()
	header := domain.AccountRow{Account: "Equity", AccountName: "Equity", RootType: domain.Equity, IsGroup: true, HasValue: true}
	capital := domain.AccountRow{Account: "Capital", AccountName: "Capital", Currency: "INR", Indent: 1, HasValue: true}
	capital.SetValue("apr_2024", decimal.NewFromInt(150))
	capital.SetValue("may_2024", decimal.NewFromInt(160))
	grand := domain.AccountRow{Account: "'Total Equity (Credit)'", AccountName: "Total Equity (Credit)", HasValue: true}
	equity := []domain.AccountRow{header, capital, grand}

	provisional := &domain.AccountRow{Values: map[string]decimal.Decimal{
		"apr_2024": decimal.NewFromInt(30),
		"may_2024": decimal.NewFromInt(30),
	}}

	organized := statements.OrganizeEquity(equity, provisional, periods)

	require.Len(t, organized, 4)
	earnings := organized[2]
	assert.Equal(t, statements.CurrentYearEarningsLabel, earnings.Account)
	assert.Equal(t, domain.Equity, earnings.RootType)
	assert.Equal(t, "INR", earnings.Currency, "display metadata comes from the account line")
	assert.True(t, earnings.Values["apr_2024"].Equal(decimal.NewFromInt(30)))

	// For every period the final row equals the sum of all rows above it.
	final := organized[len(organized)-1]
	for _, p := range periods {
		sum := decimal.Zero
		for _, row := range organized[:len(organized)-1] {
			sum = sum.Add(row.Value(p.Key))
		}
		assert.True(t, final.Value(p.Key).Equal(sum), "period %s", p.Key)
	}

	// The input sequence is untouched.
	assert.Len(t, equity, 3)
	assert.True(t, equity[1].Values["apr_2024"].Equal(decimal.NewFromInt(150)))
	assert.Nil(t, equity[2].Values, "the placeholder row keeps its empty values")
}

func TestOrganizeEquityEmpty(t *testing.T) {
	assert.Empty(t, statements.OrganizeEquity(nil, nil, twoPeriods()))
}

func TestSubtotals(t *testing.T) {
	periods := twoPeriods()
	rows := balancedSheetRows()

	current := statements.SumCurrentAssets(rows, periods, "INR")
	require.NotNil(t, current)
	assert.True(t, current.Values["apr_2024"].Equal(decimal.NewFromInt(200)))
	assert.True(t, current.Values["may_2024"].Equal(decimal.NewFromInt(220)))
	assert.True(t, current.Total.Equal(decimal.NewFromInt(420)))

	nonCurrent := statements.SumNonCurrentAssets(rows, periods, "INR")
	require.NotNil(t, nonCurrent)
	assert.True(t, nonCurrent.Values["apr_2024"].Equal(decimal.NewFromInt(180)), "depreciation reduces the subtotal through its sign")

	total := statements.SumTotalAssets(rows, periods, "INR")
	require.NotNil(t, total)
	assert.True(t, total.Values["apr_2024"].Equal(decimal.NewFromInt(380)))
	assert.True(t, total.Values["may_2024"].Equal(decimal.NewFromInt(395)))

	liabilities := statements.SumTotalLiabilities(rows, periods, "INR")
	require.NotNil(t, liabilities)
	assert.True(t, liabilities.Values["apr_2024"].Equal(decimal.NewFromInt(100)))

	liabilitiesAndEquity := statements.SumLiabilitiesAndEquity(rows, periods, "INR")
	require.NotNil(t, liabilitiesAndEquity)
	assert.True(t, liabilitiesAndEquity.Values["may_2024"].Equal(decimal.NewFromInt(365)))
}

func TestSubtotalSuppression(t *testing.T) {
	periods := twoPeriods()
	rows := statements.BalanceSheetRows{
		CashEquivalents: seq("Cash", map[string]int64{"apr_2024": 0, "may_2024": 0}),
	}

	assert.Nil(t, statements.SumCurrentAssets(rows, periods, "INR"))
	assert.Nil(t, statements.SumTotalAssets(rows, periods, "INR"))
	assert.Nil(t, statements.SumTotalLiabilities(rows, periods, "INR"))
}

func TestCheckOpeningBalanceClosed(t *testing.T) {
	rows := statements.BalanceSheetRows{
		CashEquivalents: withOpening(seq("Cash", nil), "100"),
		Payables:        withOpening(seq("Creditors", nil), "60"),
		Equity:          withOpening(seq("Capital", nil), "40"),
	}

	message, discrepancy, unclosed := statements.CheckOpeningBalance(rows, 2)
	assert.False(t, unclosed)
	assert.Empty(t, message)
	assert.True(t, discrepancy.IsZero())
}

func TestCheckOpeningBalanceUnclosed(t *testing.T) {
	rows := statements.BalanceSheetRows{
		CashEquivalents:         withOpening(seq("Cash", nil), "100"),
		FixedAssets:             withOpening(seq("Plant", nil), "50"),
		AccumulatedDepreciation: withOpening(seq("Acc Dep", nil), "10"),
		Payables:                withOpening(seq("Creditors", nil), "60"),
		Equity:                  withOpening(seq("Capital", nil), "40"),
	}

	// 100 + 50 - 10 - 60 - 40 = 40
	message, discrepancy, unclosed := statements.CheckOpeningBalance(rows, 2)
	assert.True(t, unclosed)
	assert.Equal(t, statements.UnclosedFiscalYearWarning, message)
	assert.True(t, discrepancy.Equal(decimal.NewFromInt(40)))
}

func TestCheckOpeningBalanceRounding(t *testing.T) {
	rows := statements.BalanceSheetRows{
		CashEquivalents: withOpening(seq("Cash", nil), "100.004"),
		Equity:          withOpening(seq("Capital", nil), "100"),
	}

	_, _, unclosed := statements.CheckOpeningBalance(rows, 2)
	assert.False(t, unclosed, "sub-precision residue rounds away")

	_, discrepancy, unclosed := statements.CheckOpeningBalance(rows, 3)
	assert.True(t, unclosed)
	assert.True(t, discrepancy.Equal(decimal.RequireFromString("0.004")))
}

func TestBalanceSheetAssembly(t *testing.T) {
	periods := twoPeriods()
	report := statements.BalanceSheet(balancedSheetRows(), periods, statements.ReportOptions{
		Company:     "acme",
		Currency:    "INR",
		Periodicity: domain.Monthly,
	})

	require.NotNil(t, report)
	assert.Empty(t, report.Message)

	// account_name, hidden currency, then one column per period.
	require.Len(t, report.Columns, 4)
	assert.Equal(t, "account_name", report.Columns[0].Fieldname)
	assert.Equal(t, "currency", report.Columns[1].Fieldname)
	assert.True(t, report.Columns[1].Hidden)
	assert.Equal(t, "apr_2024", report.Columns[2].Fieldname)

	byAccount := map[string]domain.AccountRow{}
	for _, row := range report.Rows {
		byAccount[row.Account] = row
	}

	totalAssets, ok := byAccount[statements.TotalAssetsLabel]
	require.True(t, ok)
	assert.True(t, totalAssets.Values["apr_2024"].Equal(decimal.NewFromInt(380)))

	earnings, ok := byAccount[statements.CurrentYearEarningsLabel]
	require.True(t, ok, "equity section carries the synthesized earnings row")
	assert.True(t, earnings.Values["may_2024"].Equal(decimal.NewFromInt(30)))

	_, ok = byAccount[statements.UnclosedFiscalYearsLabel]
	assert.False(t, ok, "no reconciliation row when opening balances agree")

	_, ok = byAccount[statements.TotalCreditLabel]
	assert.False(t, ok, "the check figure is never rendered")

	// Chart carries one value per period for each side.
	require.Len(t, report.Chart.Data.Datasets, 3)
	assert.Equal(t, "bar", report.Chart.Type)
	assert.Len(t, report.Chart.Data.Labels, 2)
	assert.Equal(t, []float64{380, 395}, report.Chart.Data.Datasets[0].Values)

	require.Len(t, report.Summary, 4)
	assert.Equal(t, "Green", report.Summary[3].Indicator)
}

func TestBalanceSheetBalancesAfterEquityReorganization(t *testing.T) {
	periods := twoPeriods()
	report := statements.BalanceSheet(balancedSheetRows(), periods, statements.ReportOptions{
		Company:     "acme",
		Currency:    "INR",
		Periodicity: domain.Monthly,
	})

	byAccount := map[string]domain.AccountRow{}
	for _, row := range report.Rows {
		byAccount[row.Account] = row
	}

	totalAssets, ok := byAccount[statements.TotalAssetsLabel]
	require.True(t, ok)
	liabilitiesAndEquity, ok := byAccount[statements.TotalLiabilitiesAndEquityLabel]
	require.True(t, ok)
	for _, p := range periods {
		assert.True(t, liabilitiesAndEquity.Value(p.Key).Equal(totalAssets.Value(p.Key)),
			"liabilities and equity must equal total assets for %s", p.Key)
	}

	// The rendered equity grand total counts the leaves and the earnings
	// row exactly once: 250+30 and 260+30.
	grand, ok := byAccount["'Total Equity (Credit)'"]
	require.True(t, ok)
	assert.True(t, grand.Values["apr_2024"].Equal(decimal.NewFromInt(280)))
	assert.True(t, grand.Values["may_2024"].Equal(decimal.NewFromInt(290)))

	// Summary equity agrees with the rendered grand total across periods.
	equityItem := report.Summary[2]
	assert.Equal(t, "Total Equity", equityItem.Label)
	value, ok := equityItem.Value.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, value.Equal(decimal.NewFromInt(570)))

	// The chart equity series carries the same figures.
	assert.Equal(t, []float64{280, 290}, report.Chart.Data.Datasets[2].Values)
}

func TestBalanceSheetColumnsWithoutCompany(t *testing.T) {
	report := statements.BalanceSheet(balancedSheetRows(), twoPeriods(), statements.ReportOptions{
		Currency:    "INR",
		Periodicity: domain.Monthly,
	})
	require.Len(t, report.Columns, 3, "no currency column without a company")
}

func TestBalanceSheetUnclosedPreviousYear(t *testing.T) {
	periods := twoPeriods()
	rows := balancedSheetRows()
	rows.CashEquivalents = withOpening(rows.CashEquivalents, "100")
	rows.Equity = withOpening(rows.Equity, "90")

	report := statements.BalanceSheet(rows, periods, statements.ReportOptions{
		Company:     "acme",
		Currency:    "INR",
		Periodicity: domain.Monthly,
	})

	assert.Equal(t, statements.UnclosedFiscalYearWarning, report.Message)

	var adjustment *domain.AccountRow
	for i := range report.Rows {
		if report.Rows[i].Account == statements.UnclosedFiscalYearsLabel {
			adjustment = &report.Rows[i]
			break
		}
	}
	require.NotNil(t, adjustment)
	assert.True(t, adjustment.Values["apr_2024"].Equal(decimal.NewFromInt(10)))
	assert.True(t, adjustment.Values["may_2024"].Equal(decimal.NewFromInt(10)))

	// Summary reads the provisional figure after the adjustment: (30-10)*2.
	profitItem := report.Summary[3]
	value, ok := profitItem.Value.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, value.Equal(decimal.NewFromInt(40)))
}

func TestBalanceSheetAccumulatedChart(t *testing.T) {
	report := statements.BalanceSheet(balancedSheetRows(), twoPeriods(), statements.ReportOptions{
		Company:           "acme",
		Currency:          "INR",
		Periodicity:       domain.Monthly,
		AccumulatedValues: true,
	})

	assert.Equal(t, "line", report.Chart.Type)
	require.Len(t, report.Chart.Data.Labels, 1, "accumulated reports chart only the final column")
	assert.Equal(t, "May 2024", report.Chart.Data.Labels[0])
}
