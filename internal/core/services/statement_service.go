package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greekrode/erpnext/internal/apperrors"
	"github.com/greekrode/erpnext/internal/core/domain"
	portsrepo "github.com/greekrode/erpnext/internal/core/ports/repositories"
	portssvc "github.com/greekrode/erpnext/internal/core/ports/services"
	"github.com/greekrode/erpnext/internal/core/statements"
)

// statementService implements the StatementService interface
type statementService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepository
	companyRepo    portsrepo.CompanyRepository
	fiscalYearRepo portsrepo.FiscalYearRepository
	floatPrecision int32
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithFloatPrecision sets the rounding precision of the opening balance
// discrepancy check. The engine default applies when unset.
func WithFloatPrecision(precision int32) StatementServiceOption {
	return func(s *statementService) {
		s.floatPrecision = precision
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(repos portsrepo.RepositoryProvider, options ...StatementServiceOption) portssvc.StatementService {
	svc := &statementService{
		ledgerRepo:     repos.LedgerRepo,
		companyRepo:    repos.CompanyRepo,
		fiscalYearRepo: repos.FiscalYearRepo,
		floatPrecision: statements.DefaultFloatPrecision,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure statementService implements the StatementService interface
var _ portssvc.StatementService = (*statementService)(nil)

// prepare resolves the period list and presentation currency for a run.
func (s *statementService) prepare(ctx context.Context, filters domain.StatementFilters) ([]domain.PeriodDescriptor, string, error) {
	fiscalYears, err := s.fiscalYearRepo.ListBetween(ctx, filters.Company, filters.FromFiscalYear, filters.ToFiscalYear)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list fiscal years: %w", err)
	}
	if len(fiscalYears) == 0 {
		return nil, "", fmt.Errorf("no fiscal years between %s and %s: %w", filters.FromFiscalYear, filters.ToFiscalYear, apperrors.ErrNotFound)
	}

	periods := statements.BuildPeriodList(fiscalYears, filters.PeriodStartDate, filters.PeriodEndDate, filters.FilterBasedOn, filters.Periodicity)

	currency := filters.PresentationCurrency
	if currency == "" && filters.Company != "" {
		currency, err = s.companyRepo.GetDefaultCurrency(ctx, filters.Company)
		if err != nil {
			return nil, "", fmt.Errorf("failed to look up default currency: %w", err)
		}
	}

	return periods, currency, nil
}

func (s *statementService) reportOptions(filters domain.StatementFilters, currency string) statements.ReportOptions {
	return statements.ReportOptions{
		Company:           filters.Company,
		Currency:          currency,
		Periodicity:       filters.Periodicity,
		AccumulatedValues: filters.AccumulatedValues,
		FloatPrecision:    s.floatPrecision,
	}
}

// BalanceSheet generates the multi-period balance sheet for the filters
func (s *statementService) BalanceSheet(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error) {
	periods, currency, err := s.prepare(ctx, filters)
	if err != nil {
		s.LogError(ctx, err, "Failed to prepare balance sheet run",
			slog.String("company", filters.Company))
		return nil, err
	}

	balanceSheetQuery := func(rootType domain.RootType, side domain.NormalSide, bucket domain.SubAccountType) portsrepo.LedgerQuery {
		return portsrepo.LedgerQuery{
			Company:           filters.Company,
			RootType:          rootType,
			NormalSide:        side,
			Periods:           periods,
			SubAccountType:    bucket,
			AccumulatedValues: filters.AccumulatedValues,
		}
	}

	var rows statements.BalanceSheetRows
	fetches := []struct {
		dest  *[]domain.AccountRow
		query portsrepo.LedgerQuery
	}{
		{&rows.CashEquivalents, balanceSheetQuery(domain.Asset, domain.Debit, domain.CashAccount)},
		{&rows.Receivables, balanceSheetQuery(domain.Asset, domain.Debit, domain.ReceivableAccount)},
		{&rows.Inventory, balanceSheetQuery(domain.Asset, domain.Debit, domain.InventoryAccount)},
		{&rows.OtherCurrentAssets, balanceSheetQuery(domain.Asset, domain.Debit, domain.OtherCurrentAssetAccount)},
		{&rows.FixedAssets, balanceSheetQuery(domain.Asset, domain.Debit, domain.FixedAssetAccount)},
		{&rows.AccumulatedDepreciation, balanceSheetQuery(domain.Asset, domain.Debit, domain.AccumulatedDepreciationAccount)},
		{&rows.Payables, balanceSheetQuery(domain.Liability, domain.Credit, domain.BusinessLiabilityAccount)},
		{&rows.OtherCurrentLiabilities, balanceSheetQuery(domain.Liability, domain.Credit, domain.OtherCurrentLiabilityAccount)},
		{&rows.Equity, balanceSheetQuery(domain.Equity, domain.Credit, domain.EquityAccount)},
	}
	for _, f := range fetches {
		*f.dest, err = s.ledgerRepo.GetRows(ctx, f.query)
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve balance sheet rows",
				slog.String("company", filters.Company),
				slog.String("sub_account_type", string(f.query.SubAccountType)))
			return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
		}
	}

	report := statements.BalanceSheet(rows, periods, s.reportOptions(filters, currency))

	s.LogInfo(ctx, "Balance sheet generated successfully",
		slog.String("company", filters.Company),
		slog.Int("period_count", len(periods)),
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("unclosed_previous_year", report.Message != ""))
	return report, nil
}

// ProfitAndLoss generates the multi-period profit & loss statement for the filters
func (s *statementService) ProfitAndLoss(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error) {
	periods, currency, err := s.prepare(ctx, filters)
	if err != nil {
		s.LogError(ctx, err, "Failed to prepare profit and loss run",
			slog.String("company", filters.Company))
		return nil, err
	}

	profitLossQuery := func(rootType domain.RootType, side domain.NormalSide) portsrepo.LedgerQuery {
		return portsrepo.LedgerQuery{
			Company:              filters.Company,
			RootType:             rootType,
			NormalSide:           side,
			Periods:              periods,
			AccumulatedValues:    filters.AccumulatedValues,
			IgnoreClosingEntries: true,
		}
	}

	incomeQuery := profitLossQuery(domain.Income, domain.Credit)
	incomeQuery.ExcludeAccountTypes = []domain.SubAccountType{domain.OtherIncomeAccount}

	cogsQuery := profitLossQuery(domain.Expense, domain.Debit)
	cogsQuery.COGSOnly = true

	expenseQuery := profitLossQuery(domain.Expense, domain.Debit)
	expenseQuery.ExcludeAccountTypes = []domain.SubAccountType{domain.OtherExpenseAccount, domain.CostOfGoodsSoldAccount}

	otherIncomeQuery := profitLossQuery(domain.Income, domain.Credit)
	otherIncomeQuery.AccountType = domain.OtherIncomeAccount

	otherExpenseQuery := profitLossQuery(domain.Expense, domain.Debit)
	otherExpenseQuery.AccountType = domain.OtherExpenseAccount

	var rows statements.ProfitAndLossRows
	fetches := []struct {
		dest  *[]domain.AccountRow
		query portsrepo.LedgerQuery
	}{
		{&rows.Income, incomeQuery},
		{&rows.COGS, cogsQuery},
		{&rows.Expense, expenseQuery},
		{&rows.OtherIncome, otherIncomeQuery},
		{&rows.OtherExpense, otherExpenseQuery},
	}
	for _, f := range fetches {
		*f.dest, err = s.ledgerRepo.GetRows(ctx, f.query)
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve profit and loss rows",
				slog.String("company", filters.Company),
				slog.String("root_type", string(f.query.RootType)))
			return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
		}
	}

	report := statements.ProfitAndLoss(rows, periods, s.reportOptions(filters, currency))

	s.LogInfo(ctx, "Profit and loss statement generated successfully",
		slog.String("company", filters.Company),
		slog.Int("period_count", len(periods)),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}
