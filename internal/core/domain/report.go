package domain

import "time"

// Column describes one report column for the rendering caller. The first
// column is always account_name; a hidden currency column follows when the
// report was run for a specific company, then one column per period.
type Column struct {
	Fieldname string `json:"fieldname"`
	Label     string `json:"label"`
	Fieldtype string `json:"fieldtype"`
	Width     int    `json:"width"`
	Hidden    bool   `json:"hidden,omitempty"`
	Options   string `json:"options,omitempty"`
}

// ChartDataset is a named series of per-column values.
type ChartDataset struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ChartData holds the labels and series of a report chart.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// Chart is the presentation spec for a report: bar for discrete periods,
// line when the report shows accumulated values.
type Chart struct {
	Type      string    `json:"type"`
	Data      ChartData `json:"data"`
	Fieldtype string    `json:"fieldtype,omitempty"`
}

// SummaryItem is one headline figure under the report, or a separator
// pseudo-entry (Type "separator", Value "-" or "=").
type SummaryItem struct {
	Type      string `json:"type,omitempty"`
	Value     any    `json:"value"`
	Label     string `json:"label,omitempty"`
	Datatype  string `json:"datatype,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Indicator string `json:"indicator,omitempty"`
	Color     string `json:"color,omitempty"`
}

// FinancialReport is the full computed statement handed to the rendering
// caller: columns, the ordered row sequence, an advisory warning message
// (empty when none), the chart spec and the summary figures.
type FinancialReport struct {
	Columns []Column      `json:"columns"`
	Rows    []AccountRow  `json:"rows"`
	Message string        `json:"message,omitempty"`
	Chart   Chart         `json:"chart"`
	Summary []SummaryItem `json:"summary"`
}

// StatementFilters are the caller-supplied parameters of a statement run.
type StatementFilters struct {
	Company              string
	FromFiscalYear       string
	ToFiscalYear         string
	PeriodStartDate      time.Time
	PeriodEndDate        time.Time
	FilterBasedOn        string // "Fiscal Year" or "Date Range"
	Periodicity          Periodicity
	AccumulatedValues    bool
	PresentationCurrency string
}
