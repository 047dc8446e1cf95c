package pgsql

import (
	"context"

	"github.com/greekrode/erpnext/internal/apperrors"
	"github.com/greekrode/erpnext/internal/core/domain"
	portRepo "github.com/greekrode/erpnext/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFiscalYearRepository implements the FiscalYearRepository interface using pgx
type PgxFiscalYearRepository struct {
	BaseRepository
}

// NewPgxFiscalYearRepository creates a new PgxFiscalYearRepository
func NewPgxFiscalYearRepository(pool *pgxpool.Pool) *PgxFiscalYearRepository {
	return &PgxFiscalYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portRepo.FiscalYearRepository = (*PgxFiscalYearRepository)(nil)

// ListBetween returns a company's fiscal years from fromFY through toFY
// inclusive, ordered by start date. Fiscal year names are resolved to their
// calendar spans first, so the range works regardless of naming scheme.
func (r *PgxFiscalYearRepository) ListBetween(ctx context.Context, companyID, fromFY, toFY string) ([]domain.FiscalYear, error) {
	query := `
		SELECT fiscal_year_name, company_id, year_start_date, year_end_date, closed
		FROM fiscal_years
		WHERE company_id = $1
		  AND year_start_date >= (
			SELECT year_start_date FROM fiscal_years
			WHERE company_id = $1 AND fiscal_year_name = $2)
		  AND year_end_date <= (
			SELECT year_end_date FROM fiscal_years
			WHERE company_id = $1 AND fiscal_year_name = $3)
		ORDER BY year_start_date`

	rows, err := r.Pool.Query(ctx, query, companyID, fromFY, toFY)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal years", err)
	}
	defer rows.Close()

	var years []domain.FiscalYear
	for rows.Next() {
		var fy domain.FiscalYear
		if err := rows.Scan(&fy.Name, &fy.CompanyID, &fy.YearStartDate, &fy.YearEndDate, &fy.Closed); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fiscal year", err)
		}
		years = append(years, fy)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read fiscal years", err)
	}
	return years, nil
}
