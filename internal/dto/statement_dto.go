package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/greekrode/erpnext/internal/apperrors"
	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/greekrode/erpnext/internal/core/statements"
)

const dateLayout = "2006-01-02"

// StatementRequest carries the query parameters of a financial statement run.
type StatementRequest struct {
	Company              string `form:"company"`
	FromFiscalYear       string `form:"from_fiscal_year" binding:"required,fiscalyear"`
	ToFiscalYear         string `form:"to_fiscal_year" binding:"required,fiscalyear"`
	PeriodStartDate      string `form:"period_start_date"`
	PeriodEndDate        string `form:"period_end_date"`
	FilterBasedOn        string `form:"filter_based_on"`
	Periodicity          string `form:"periodicity" binding:"omitempty,oneof=Monthly Quarterly Half-Yearly Yearly"`
	AccumulatedValues    bool   `form:"accumulated_values"`
	PresentationCurrency string `form:"presentation_currency"`
}

// ToStatementFilters validates the request and converts it to domain filters.
// Periodicity defaults to Yearly and the range defaults to fiscal year
// boundaries; a date range filter requires both dates.
func (r StatementRequest) ToStatementFilters() (domain.StatementFilters, error) {
	filters := domain.StatementFilters{
		Company:              r.Company,
		FromFiscalYear:       r.FromFiscalYear,
		ToFiscalYear:         r.ToFiscalYear,
		FilterBasedOn:        r.FilterBasedOn,
		Periodicity:          domain.Periodicity(r.Periodicity),
		AccumulatedValues:    r.AccumulatedValues,
		PresentationCurrency: r.PresentationCurrency,
	}
	if filters.Periodicity == "" {
		filters.Periodicity = domain.Yearly
	}
	if filters.FilterBasedOn == "" {
		filters.FilterBasedOn = "Fiscal Year"
	}

	if filters.FilterBasedOn == statements.FilterBasedOnDateRange {
		if r.PeriodStartDate == "" || r.PeriodEndDate == "" {
			return domain.StatementFilters{}, fmt.Errorf("date range filter needs both period_start_date and period_end_date: %w", apperrors.ErrValidation)
		}
	}
	if r.PeriodStartDate != "" {
		start, err := time.Parse(dateLayout, r.PeriodStartDate)
		if err != nil {
			return domain.StatementFilters{}, fmt.Errorf("invalid period_start_date %q: %w", r.PeriodStartDate, apperrors.ErrValidation)
		}
		filters.PeriodStartDate = start
	}
	if r.PeriodEndDate != "" {
		end, err := time.Parse(dateLayout, r.PeriodEndDate)
		if err != nil {
			return domain.StatementFilters{}, fmt.Errorf("invalid period_end_date %q: %w", r.PeriodEndDate, apperrors.ErrValidation)
		}
		filters.PeriodEndDate = end
	}
	if !filters.PeriodStartDate.IsZero() && filters.PeriodEndDate.Before(filters.PeriodStartDate) {
		return domain.StatementFilters{}, fmt.Errorf("period_end_date precedes period_start_date: %w", apperrors.ErrValidation)
	}
	return filters, nil
}

// ReportRowResponse renders one statement row. Period values are flattened
// beside the static fields so each column's fieldname resolves directly
// against the row object; a blank spacer row serializes as an empty object.
type ReportRowResponse struct {
	domain.AccountRow
}

// MarshalJSON implements json.Marshaler.
func (r ReportRowResponse) MarshalJSON() ([]byte, error) {
	if r.IsBlank() {
		return []byte("{}"), nil
	}
	out := map[string]any{
		"account":      r.Account,
		"account_name": r.AccountName,
		"is_group":     r.IsGroup,
		"indent":       r.Indent,
		"total":        r.Total,
	}
	if r.ParentAccount != "" {
		out["parent_account"] = r.ParentAccount
	}
	if r.RootType != "" {
		out["root_type"] = r.RootType
	}
	if r.AccountType != "" {
		out["account_type"] = r.AccountType
	}
	if r.Currency != "" {
		out["currency"] = r.Currency
	}
	if !r.YearStartDate.IsZero() {
		out["year_start_date"] = r.YearStartDate.Format(dateLayout)
		out["year_end_date"] = r.YearEndDate.Format(dateLayout)
	}
	if !r.OpeningBalance.IsZero() {
		out["opening_balance"] = r.OpeningBalance
	}
	if r.WarnIfNegative {
		out["warn_if_negative"] = true
	}
	if r.HasValue {
		out["has_value"] = true
	}
	for key, v := range r.Values {
		out[key] = v
	}
	return json.Marshal(out)
}

// FinancialReportResponse is the full statement payload.
type FinancialReportResponse struct {
	Columns []domain.Column      `json:"columns"`
	Rows    []ReportRowResponse  `json:"rows"`
	Message string               `json:"message,omitempty"`
	Chart   domain.Chart         `json:"chart"`
	Summary []domain.SummaryItem `json:"report_summary"`
}

// ToFinancialReportResponse converts a computed report to its response DTO.
func ToFinancialReportResponse(report *domain.FinancialReport) FinancialReportResponse {
	rows := make([]ReportRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = ReportRowResponse{AccountRow: row}
	}
	return FinancialReportResponse{
		Columns: report.Columns,
		Rows:    rows,
		Message: report.Message,
		Chart:   report.Chart,
		Summary: report.Summary,
	}
}
