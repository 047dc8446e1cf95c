package statements

import (
	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Labels of the synthesized balance sheet rows. Check figures computed as a
// balancing amount rather than from ledger rows keep the surrounding quote
// convention so renderers can tell them apart from account lines.
const (
	TotalCurrentAssetsLabel        = "Total Current Assets"
	TotalNonCurrentAssetsLabel     = "Total Non-Current Assets"
	TotalAssetsLabel               = "Total Assets"
	TotalCurrentLiabilitiesLabel   = "Total Current Liabilities"
	TotalLiabilitiesLabel          = "Total Liabilities"
	TotalLiabilitiesAndEquityLabel = "Total Liabilities and Equity"
	CurrentYearEarningsLabel       = "Current Year Earnings"
	ProvisionalProfitLossLabel     = "'Provisional Profit / Loss (Credit)'"
	TotalCreditLabel               = "'Total (Credit)'"
	UnclosedFiscalYearsLabel       = "'Unclosed Fiscal Years Profit / Loss (Credit)'"

	// UnclosedFiscalYearWarning is the advisory message returned when the
	// prior fiscal year's closing entry is missing. The report still
	// renders, with a reconciliation row appended.
	UnclosedFiscalYearWarning = "Previous Financial Year is not closed"
)

// DefaultFloatPrecision is the rounding precision applied to the opening
// balance discrepancy check when none is configured.
const DefaultFloatPrecision = 2

// BalanceSheetRows carries the nine categorized row sequences a balance
// sheet is computed from. Any sequence may be nil; it then contributes zero
// everywhere.
type BalanceSheetRows struct {
	CashEquivalents         []domain.AccountRow
	Receivables             []domain.AccountRow
	Inventory               []domain.AccountRow
	OtherCurrentAssets      []domain.AccountRow
	FixedAssets             []domain.AccountRow
	AccumulatedDepreciation []domain.AccountRow
	Payables                []domain.AccountRow
	OtherCurrentLiabilities []domain.AccountRow
	Equity                  []domain.AccountRow
}

// ReportOptions are the presentation parameters shared by both statements.
type ReportOptions struct {
	Company           string
	Currency          string
	Periodicity       domain.Periodicity
	AccumulatedValues bool
	FloatPrecision    int32
}

// ProvisionalProfitLoss derives the balancing figure of the sheet: per
// period, the sum of the six asset sequences minus the sum of payables,
// other current liabilities and equity. Asset values are summed with their
// stored sign, so accumulated depreciation (carried negative) reduces the
// asset side on its own.
//
// The second return is the "Total (Credit)" check row: liabilities plus the
// balancing figure, which re-derives total assets from the credit side. It
// is computed for reconciliation and never rendered. The first return is
// nil when every period's figure is zero.
func ProvisionalProfitLoss(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) (*domain.AccountRow, *domain.AccountRow) {
	profitLoss := newTotalRow(ProvisionalProfitLossLabel, currency)
	totalCredit := newTotalRow(TotalCreditLabel, currency)

	total := decimal.Zero
	totalCreditTotal := decimal.Zero
	hasValue := false

	for _, p := range periods {
		asset := SumValues(rows.CashEquivalents, p.Key).
			Add(SumValues(rows.Receivables, p.Key)).
			Add(SumValues(rows.Inventory, p.Key)).
			Add(SumValues(rows.OtherCurrentAssets, p.Key)).
			Add(SumValues(rows.FixedAssets, p.Key)).
			Add(SumValues(rows.AccumulatedDepreciation, p.Key))

		liability := SumValues(rows.Payables, p.Key).
			Add(SumValues(rows.OtherCurrentLiabilities, p.Key)).
			Add(SumValues(rows.Equity, p.Key))

		v := asset.Sub(liability)
		profitLoss.Values[p.Key] = v
		totalCredit.Values[p.Key] = liability.Add(v)

		if !v.IsZero() {
			hasValue = true
		}

		total = total.Add(v)
		profitLoss.Total = total

		totalCreditTotal = totalCreditTotal.Add(totalCredit.Values[p.Key])
		totalCredit.Total = totalCreditTotal
	}

	if !hasValue {
		return nil, totalCredit
	}
	return profitLoss, totalCredit
}

// OrganizeEquity returns a new equity sequence with a synthetic "Current
// Year Earnings" row inserted immediately before the final grand-total row,
// carrying the provisional profit/loss per period, and with the grand-total
// row recomputed so that for every period it equals the sum of all other
// equity rows. The input sequence is left untouched.
func OrganizeEquity(equity []domain.AccountRow, provisional *domain.AccountRow, periods []domain.PeriodDescriptor) []domain.AccountRow {
	if len(equity) == 0 {
		return equity
	}

	// Display metadata comes from the first real account line; index 0 is
	// the root group header.
	meta := equity[0]
	if len(equity) > 1 {
		meta = equity[1]
	}

	earnings := domain.AccountRow{
		Account:       CurrentYearEarningsLabel,
		AccountName:   CurrentYearEarningsLabel,
		ParentAccount: meta.ParentAccount,
		RootType:      domain.Equity,
		AccountType:   domain.EquityAccount,
		Currency:      meta.Currency,
		Indent:        meta.Indent,
		YearStartDate: meta.YearStartDate,
		YearEndDate:   meta.YearEndDate,
		HasValue:      true,
		Values:        make(map[string]decimal.Decimal, len(periods)),
	}
	total := decimal.Zero
	for _, p := range periods {
		v := rowValue(provisional, p.Key)
		earnings.Values[p.Key] = v
		total = total.Add(v)
		earnings.Total = total
	}

	out := make([]domain.AccountRow, 0, len(equity)+1)
	out = append(out, equity[:len(equity)-1]...)
	out = append(out, earnings)

	grand := equity[len(equity)-1]
	grand.Values = make(map[string]decimal.Decimal, len(periods))
	grandTotal := decimal.Zero
	for _, p := range periods {
		sum := decimal.Zero
		for _, row := range out {
			sum = sum.Add(row.Value(p.Key))
		}
		grand.Values[p.Key] = sum
		grandTotal = grandTotal.Add(sum)
		grand.Total = grandTotal
	}

	return append(out, grand)
}

// subtotalOf folds the given sequences into one subtotal row: per period the
// sum of each sequence's values, with the running total accumulated in
// period order. Returns nil when every period sums to zero, so all-zero
// subtotal lines never render.
func subtotalOf(label, currency string, periods []domain.PeriodDescriptor, sequences ...[]domain.AccountRow) *domain.AccountRow {
	row := newTotalRow(label, currency)
	total := decimal.Zero
	hasValue := false

	for _, p := range periods {
		v := decimal.Zero
		for _, seq := range sequences {
			v = v.Add(SumValues(seq, p.Key))
		}
		row.Values[p.Key] = v

		if !v.IsZero() {
			hasValue = true
		}

		total = total.Add(v)
		row.Total = total
	}

	if !hasValue {
		return nil
	}
	return row
}

// SumCurrentAssets totals cash equivalents, receivables, inventory and
// other current assets per period.
func SumCurrentAssets(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	return subtotalOf(TotalCurrentAssetsLabel, currency, periods,
		rows.CashEquivalents, rows.Receivables, rows.Inventory, rows.OtherCurrentAssets)
}

// SumNonCurrentAssets totals fixed assets and accumulated depreciation per
// period; depreciation carries its own (negative) sign.
func SumNonCurrentAssets(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	return subtotalOf(TotalNonCurrentAssetsLabel, currency, periods,
		rows.FixedAssets, rows.AccumulatedDepreciation)
}

// SumTotalAssets composes the current and non-current subtotals into the
// grand asset total, honoring their suppression.
func SumTotalAssets(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	current := SumCurrentAssets(rows, periods, currency)
	nonCurrent := SumNonCurrentAssets(rows, periods, currency)

	row := newTotalRow(TotalAssetsLabel, currency)
	total := decimal.Zero
	hasValue := false

	for _, p := range periods {
		v := rowValue(current, p.Key).Add(rowValue(nonCurrent, p.Key))
		row.Values[p.Key] = v

		if !v.IsZero() {
			hasValue = true
		}

		total = total.Add(v)
		row.Total = total
	}

	if !hasValue {
		return nil
	}
	return row
}

// SumCurrentLiabilities totals payables and other current liabilities per
// period.
func SumCurrentLiabilities(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	return subtotalOf(TotalCurrentLiabilitiesLabel, currency, periods,
		rows.Payables, rows.OtherCurrentLiabilities)
}

// SumTotalLiabilities totals the same two sequences as SumCurrentLiabilities
// under the grand-total label. The model has no long-term liability bucket,
// so the two figures coincide intentionally.
func SumTotalLiabilities(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	return subtotalOf(TotalLiabilitiesLabel, currency, periods,
		rows.Payables, rows.OtherCurrentLiabilities)
}

// SumLiabilitiesAndEquity totals payables, other current liabilities and
// equity per period.
func SumLiabilitiesAndEquity(rows BalanceSheetRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	return subtotalOf(TotalLiabilitiesAndEquityLabel, currency, periods,
		rows.Payables, rows.OtherCurrentLiabilities, rows.Equity)
}

// withEarnings folds the provisional profit/loss into a credit-side total
// exactly once, so that after the current year earnings row is inserted into
// equity the rendered total still equals total assets.
func withEarnings(row, provisional *domain.AccountRow, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	if provisional == nil {
		return row
	}
	if row == nil {
		row = newTotalRow(TotalLiabilitiesAndEquityLabel, currency)
	}
	total := decimal.Zero
	for _, p := range periods {
		v := row.Value(p.Key).Add(provisional.Value(p.Key))
		row.Values[p.Key] = v
		total = total.Add(v)
		row.Total = total
	}
	return row
}

// CheckOpeningBalance sums the opening balance carried on the last row of
// each sequence, signed by side: asset sequences add, accumulated
// depreciation and the credit-side sequences subtract. A non-zero result
// after rounding to the configured precision means the previous fiscal year
// was never closed; the returned message and discrepancy then drive the
// reconciliation row.
func CheckOpeningBalance(rows BalanceSheetRows, precision int32) (string, decimal.Decimal, bool) {
	if precision <= 0 {
		precision = DefaultFloatPrecision
	}

	opening := decimal.Zero
	add := func(seq []domain.AccountRow, negate bool) {
		if len(seq) == 0 {
			return
		}
		ob := seq[len(seq)-1].OpeningBalance.Round(precision)
		if negate {
			ob = ob.Neg()
		}
		opening = opening.Add(ob)
	}

	add(rows.CashEquivalents, false)
	add(rows.Receivables, false)
	add(rows.Inventory, false)
	add(rows.OtherCurrentAssets, false)
	add(rows.FixedAssets, false)
	add(rows.AccumulatedDepreciation, true)
	add(rows.Payables, true)
	add(rows.OtherCurrentLiabilities, true)
	add(rows.Equity, true)

	opening = opening.Round(precision)
	if opening.IsZero() {
		return "", decimal.Zero, false
	}
	return UnclosedFiscalYearWarning, opening, true
}

// BalanceSheet computes the complete balance sheet report from the nine
// categorized row sequences: provisional profit/loss, equity
// reorganization, subtotal chain, opening balance check, assembly, columns,
// chart and summary. It is one atomic computation with no I/O.
func BalanceSheet(rows BalanceSheetRows, periods []domain.PeriodDescriptor, opts ReportOptions) *domain.FinancialReport {
	provisional, _ := ProvisionalProfitLoss(rows, periods, opts.Currency)

	// The organized sequence is for rendering only: its recomputed grand-total
	// row carries values, so summing it would count equity twice. Every total
	// below reads the leaf-only sequences and folds the provisional figure in
	// where current year earnings belong.
	organizedEquity := OrganizeEquity(rows.Equity, provisional, periods)

	currentAssets := SumCurrentAssets(rows, periods, opts.Currency)
	nonCurrentAssets := SumNonCurrentAssets(rows, periods, opts.Currency)
	totalAssets := SumTotalAssets(rows, periods, opts.Currency)
	currentLiabilities := SumCurrentLiabilities(rows, periods, opts.Currency)
	totalLiabilities := SumTotalLiabilities(rows, periods, opts.Currency)
	liabilitiesAndEquity := withEarnings(SumLiabilitiesAndEquity(rows, periods, opts.Currency), provisional, periods, opts.Currency)

	message, discrepancy, unclosed := CheckOpeningBalance(rows, opts.FloatPrecision)

	data := make([]domain.AccountRow, 0, 32)
	data = append(data, sectionRow("Assets", domain.Asset))
	data = append(data, sectionRow("Current Assets", domain.Asset))
	data = append(data, rows.CashEquivalents...)
	data = append(data, rows.Receivables...)
	data = append(data, rows.Inventory...)
	data = append(data, rows.OtherCurrentAssets...)
	if currentAssets != nil {
		data = append(data, *currentAssets)
	}
	data = append(data, domain.AccountRow{})

	data = append(data, sectionRow("Non-Current Assets", domain.Asset))
	data = append(data, rows.FixedAssets...)
	data = append(data, rows.AccumulatedDepreciation...)
	if nonCurrentAssets != nil {
		data = append(data, *nonCurrentAssets)
	}
	data = append(data, domain.AccountRow{})

	if totalAssets != nil {
		data = append(data, *totalAssets)
	}
	data = append(data, domain.AccountRow{})

	data = append(data, sectionRow("Liabilities and Equity", domain.Liability))
	data = append(data, sectionRow("Liabilities", domain.Liability))
	data = append(data, sectionRow("Current Liabilities", domain.Liability))
	data = append(data, rows.Payables...)
	data = append(data, rows.OtherCurrentLiabilities...)
	if currentLiabilities != nil {
		data = append(data, *currentLiabilities)
	}
	data = append(data, domain.AccountRow{})

	if totalLiabilities != nil {
		data = append(data, *totalLiabilities)
	}
	data = append(data, domain.AccountRow{})

	data = append(data, organizedEquity...)
	if liabilitiesAndEquity != nil {
		data = append(data, *liabilitiesAndEquity)
	}

	if unclosed {
		adjustment := domain.AccountRow{
			Account:        UnclosedFiscalYearsLabel,
			AccountName:    UnclosedFiscalYearsLabel,
			Currency:       opts.Currency,
			WarnIfNegative: true,
			Values:         make(map[string]decimal.Decimal, len(periods)),
			Total:          discrepancy,
		}
		for _, p := range periods {
			adjustment.Values[p.Key] = discrepancy
			if provisional != nil {
				provisional.Values[p.Key] = provisional.Values[p.Key].Sub(discrepancy)
			}
		}
		data = append(data, adjustment)
	}

	columns := BuildColumns(opts.Periodicity, periods, opts.AccumulatedValues, opts.Company)
	chart := balanceSheetChart(rows, provisional, columns, opts.AccumulatedValues)
	summary := balanceSheetSummary(rows, provisional, periods, opts)

	return &domain.FinancialReport{
		Columns: columns,
		Rows:    FinalizeRows(data, periods),
		Message: message,
		Chart:   chart,
		Summary: summary,
	}
}

// balanceSheetChart builds the assets/liabilities/equity series, one value
// per period column; the equity series includes the current year earnings.
// Accumulated reports chart only the last column, as a line instead of bars.
func balanceSheetChart(rows BalanceSheetRows, provisional *domain.AccountRow, columns []domain.Column, accumulated bool) domain.Chart {
	cols := periodColumns(columns)
	if accumulated && len(cols) > 0 {
		cols = cols[len(cols)-1:]
	}

	var labels []string
	var assetData, liabilityData, equityData []float64

	for _, col := range cols {
		labels = append(labels, col.Label)

		asset := SumValues(rows.CashEquivalents, col.Fieldname).
			Add(SumValues(rows.Receivables, col.Fieldname)).
			Add(SumValues(rows.Inventory, col.Fieldname)).
			Add(SumValues(rows.OtherCurrentAssets, col.Fieldname)).
			Add(SumValues(rows.FixedAssets, col.Fieldname)).
			Add(SumValues(rows.AccumulatedDepreciation, col.Fieldname))
		liability := SumValues(rows.Payables, col.Fieldname).
			Add(SumValues(rows.OtherCurrentLiabilities, col.Fieldname))
		equity := SumValues(rows.Equity, col.Fieldname).
			Add(rowValue(provisional, col.Fieldname))

		assetData = append(assetData, asset.InexactFloat64())
		liabilityData = append(liabilityData, liability.InexactFloat64())
		equityData = append(equityData, equity.InexactFloat64())
	}

	chart := domain.Chart{
		Type: "bar",
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []domain.ChartDataset{
				{Name: "Assets", Values: assetData},
				{Name: "Liabilities", Values: liabilityData},
				{Name: "Equity", Values: equityData},
			},
		},
	}
	if accumulated {
		chart.Type = "line"
	}
	return chart
}

// balanceSheetSummary produces the four headline figures. Accumulated
// reports already carry running totals, so only the last period is read.
func balanceSheetSummary(rows BalanceSheetRows, provisional *domain.AccountRow, periods []domain.PeriodDescriptor, opts ReportOptions) []domain.SummaryItem {
	if opts.AccumulatedValues && len(periods) > 0 {
		periods = periods[len(periods)-1:]
	}

	netAsset := decimal.Zero
	netLiability := decimal.Zero
	netEquity := decimal.Zero
	netProfitLoss := decimal.Zero

	for _, p := range periods {
		netAsset = netAsset.
			Add(SumValues(rows.CashEquivalents, p.Key)).
			Add(SumValues(rows.Receivables, p.Key)).
			Add(SumValues(rows.Inventory, p.Key)).
			Add(SumValues(rows.OtherCurrentAssets, p.Key)).
			Add(SumValues(rows.FixedAssets, p.Key)).
			Add(SumValues(rows.AccumulatedDepreciation, p.Key))
		netLiability = netLiability.
			Add(SumValues(rows.Payables, p.Key)).
			Add(SumValues(rows.OtherCurrentLiabilities, p.Key))
		netEquity = netEquity.
			Add(SumValues(rows.Equity, p.Key)).
			Add(rowValue(provisional, p.Key))
		netProfitLoss = netProfitLoss.Add(rowValue(provisional, p.Key))
	}

	indicator := "Red"
	if netProfitLoss.IsPositive() {
		indicator = "Green"
	}

	return []domain.SummaryItem{
		{Value: netAsset, Label: "Total Asset", Datatype: "Currency", Currency: opts.Currency},
		{Value: netLiability, Label: "Total Liability", Datatype: "Currency", Currency: opts.Currency},
		{Value: netEquity, Label: "Total Equity", Datatype: "Currency", Currency: opts.Currency},
		{Value: netProfitLoss, Label: "Provisional Profit / Loss (Credit)", Datatype: "Currency", Currency: opts.Currency, Indicator: indicator},
	}
}
