package services

import (
	"context"

	"github.com/greekrode/erpnext/internal/core/domain"
)

// StatementService defines operations for generating financial statements.
type StatementService interface {
	// BalanceSheet computes the multi-period balance sheet for the filters.
	BalanceSheet(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error)

	// ProfitAndLoss computes the multi-period profit & loss statement for
	// the filters.
	ProfitAndLoss(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error)
}

// ServiceContainer bundles every service implementation handed to the
// transport layer.
type ServiceContainer struct {
	Statement StatementService
}
