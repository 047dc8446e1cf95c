package repositories

import (
	"context"

	"github.com/greekrode/erpnext/internal/core/domain"
)

// CompanyRepository defines lookups against the company master data.
type CompanyRepository interface {
	// GetDefaultCurrency returns the default currency code of a company.
	GetDefaultCurrency(ctx context.Context, companyID string) (string, error)
}

// FiscalYearRepository defines lookups against the fiscal year calendar.
type FiscalYearRepository interface {
	// ListBetween returns a company's fiscal years from fromFY through
	// toFY inclusive, ordered by start date.
	ListBetween(ctx context.Context, companyID, fromFY, toFY string) ([]domain.FiscalYear, error)
}
