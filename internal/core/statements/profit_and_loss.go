package statements

import (
	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Labels of the synthesized profit & loss rows.
const (
	GrossProfitLossLabel       = "Gross Profit / Loss"
	OperationalProfitLossLabel = "Operational Profit / Loss"
	NonOperationalSumLabel     = "Total Non-Operational Income and Expense"
	NetProfitLossLabel         = "Net Profit / Loss"
	NonOperationalHeaderLabel  = "NON-OPERATIONAL INCOME AND EXPENSE"
)

// ProfitAndLossRows carries the five categorized row sequences a profit &
// loss statement is computed from. Any sequence may be nil.
type ProfitAndLossRows struct {
	Income       []domain.AccountRow
	COGS         []domain.AccountRow
	Expense      []domain.AccountRow
	OtherIncome  []domain.AccountRow
	OtherExpense []domain.AccountRow
}

// GrossProfitLoss is income minus cost of goods sold, per period.
func GrossProfitLoss(rows ProfitAndLossRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	row := newTotalRow(GrossProfitLossLabel, currency)
	total := decimal.Zero
	hasValue := false

	for _, p := range periods {
		v := SumValues(rows.Income, p.Key).Sub(SumValues(rows.COGS, p.Key))
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

// OperationalProfitLoss is income minus cost of goods sold minus operating
// expense, per period.
func OperationalProfitLoss(rows ProfitAndLossRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	row := newTotalRow(OperationalProfitLossLabel, currency)
	total := decimal.Zero
	hasValue := false

	for _, p := range periods {
		v := SumValues(rows.Income, p.Key).
			Sub(SumValues(rows.COGS, p.Key)).
			Sub(SumValues(rows.Expense, p.Key))
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

// NonOperationalSum is other income minus other expense, per period.
func NonOperationalSum(rows ProfitAndLossRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	row := newTotalRow(NonOperationalSumLabel, currency)
	total := decimal.Zero
	hasValue := false

	for _, p := range periods {
		v := SumValues(rows.OtherIncome, p.Key).Sub(SumValues(rows.OtherExpense, p.Key))
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

// NetProfitLoss is (income + other income) minus (expense + other expense +
// cost of goods sold), per period. It is re-derived from the five base
// sequences rather than composed from the intermediate subtotals, so its
// rounding and ordering behavior stays independent of them.
func NetProfitLoss(rows ProfitAndLossRows, periods []domain.PeriodDescriptor, currency string) *domain.AccountRow {
	row := newTotalRow(NetProfitLossLabel, currency)
	total := decimal.Zero
	hasValue := false

	for _, p := range periods {
		income := SumValues(rows.Income, p.Key).Add(SumValues(rows.OtherIncome, p.Key))
		expense := SumValues(rows.Expense, p.Key).
			Add(SumValues(rows.OtherExpense, p.Key)).
			Add(SumValues(rows.COGS, p.Key))

		v := income.Sub(expense)
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

// ProfitAndLoss computes the complete profit & loss report: the derived
// figure chain, section assembly, columns, chart and summary.
func ProfitAndLoss(rows ProfitAndLossRows, periods []domain.PeriodDescriptor, opts ReportOptions) *domain.FinancialReport {
	grossProfitLoss := GrossProfitLoss(rows, periods, opts.Currency)
	operationalProfitLoss := OperationalProfitLoss(rows, periods, opts.Currency)
	nonOperationalSum := NonOperationalSum(rows, periods, opts.Currency)
	netProfitLoss := NetProfitLoss(rows, periods, opts.Currency)

	data := make([]domain.AccountRow, 0, 16)
	data = append(data, rows.Income...)
	data = append(data, rows.COGS...)
	if grossProfitLoss != nil {
		data = append(data, *grossProfitLoss)
	}
	data = append(data, domain.AccountRow{})

	data = append(data, rows.Expense...)
	if operationalProfitLoss != nil {
		data = append(data, *operationalProfitLoss)
	}
	data = append(data, domain.AccountRow{})

	data = append(data, sectionRow(NonOperationalHeaderLabel, domain.Expense))
	data = append(data, rows.OtherIncome...)
	data = append(data, rows.OtherExpense...)
	if nonOperationalSum != nil {
		data = append(data, *nonOperationalSum)
	}
	data = append(data, domain.AccountRow{})

	if netProfitLoss != nil {
		data = append(data, *netProfitLoss)
	}

	columns := BuildColumns(opts.Periodicity, periods, opts.AccumulatedValues, opts.Company)
	chart := profitAndLossChart(rows, netProfitLoss, columns, opts.AccumulatedValues)
	summary := profitAndLossSummary(rows, netProfitLoss, periods, opts)

	return &domain.FinancialReport{
		Columns: columns,
		Rows:    FinalizeRows(data, periods),
		Chart:   chart,
		Summary: summary,
	}
}

// profitAndLossChart builds the income / expense / net profit series, one
// value per period column. COGS and other expense fold into the expense
// series; net profit is read straight off the net profit/loss record.
func profitAndLossChart(rows ProfitAndLossRows, netProfitLoss *domain.AccountRow, columns []domain.Column, accumulated bool) domain.Chart {
	cols := periodColumns(columns)
	if accumulated && len(cols) > 0 {
		cols = cols[len(cols)-1:]
	}

	var labels []string
	var incomeData, expenseData, netProfitData []float64

	for _, col := range cols {
		labels = append(labels, col.Label)

		income := SumValues(rows.Income, col.Fieldname).
			Add(SumValues(rows.OtherIncome, col.Fieldname))
		expense := SumValues(rows.Expense, col.Fieldname).
			Add(SumValues(rows.COGS, col.Fieldname)).
			Add(SumValues(rows.OtherExpense, col.Fieldname))

		incomeData = append(incomeData, income.InexactFloat64())
		expenseData = append(expenseData, expense.InexactFloat64())
		netProfitData = append(netProfitData, rowValue(netProfitLoss, col.Fieldname).InexactFloat64())
	}

	chart := domain.Chart{
		Type: "bar",
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []domain.ChartDataset{
				{Name: "Income", Values: incomeData},
				{Name: "Expense", Values: expenseData},
				{Name: "Net Profit/Loss", Values: netProfitData},
			},
		},
		Fieldtype: "Currency",
	}
	if accumulated {
		chart.Type = "line"
	}
	return chart
}

// profitAndLossSummary produces the income / expense / net profit headline
// figures with separator entries between them. A single yearly period gets
// the "this year" label variants.
func profitAndLossSummary(rows ProfitAndLossRows, netProfitLoss *domain.AccountRow, periods []domain.PeriodDescriptor, opts ReportOptions) []domain.SummaryItem {
	netIncome := decimal.Zero
	netExpense := decimal.Zero
	netProfit := decimal.Zero

	for _, p := range periods {
		netIncome = netIncome.
			Add(SumValues(rows.Income, p.Key)).
			Add(SumValues(rows.OtherIncome, p.Key))
		netExpense = netExpense.
			Add(SumValues(rows.Expense, p.Key)).
			Add(SumValues(rows.OtherExpense, p.Key)).
			Add(SumValues(rows.COGS, p.Key))
		netProfit = netProfit.Add(rowValue(netProfitLoss, p.Key))
	}

	profitLabel := "Net Profit"
	incomeLabel := "Total Income"
	expenseLabel := "Total Expense"
	if len(periods) == 1 && opts.Periodicity == domain.Yearly {
		profitLabel = "Profit This Year"
		incomeLabel = "Total Income This Year"
		expenseLabel = "Total Expense This Year"
	}

	indicator := "Red"
	if netProfit.IsPositive() {
		indicator = "Green"
	}

	return []domain.SummaryItem{
		{Value: netIncome, Label: incomeLabel, Datatype: "Currency", Currency: opts.Currency},
		{Type: "separator", Value: "-"},
		{Value: netExpense, Label: expenseLabel, Datatype: "Currency", Currency: opts.Currency},
		{Type: "separator", Value: "=", Color: "blue"},
		{Value: netProfit, Label: profitLabel, Datatype: "Currency", Currency: opts.Currency, Indicator: indicator},
	}
}
