package pgsql

import (
	portRepo "github.com/greekrode/erpnext/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a RepositoryProvider backed by PostgreSQL.
func NewRepositoryProvider(pool *pgxpool.Pool) *portRepo.RepositoryProvider {
	return &portRepo.RepositoryProvider{
		LedgerRepo:     NewPgxLedgerRepository(pool),
		CompanyRepo:    NewPgxCompanyRepository(pool),
		FiscalYearRepo: NewPgxFiscalYearRepository(pool),
	}
}
