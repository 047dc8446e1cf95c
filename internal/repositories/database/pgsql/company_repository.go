package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/greekrode/erpnext/internal/apperrors"
	portRepo "github.com/greekrode/erpnext/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCompanyRepository implements the CompanyRepository interface using pgx
type PgxCompanyRepository struct {
	BaseRepository
}

// NewPgxCompanyRepository creates a new PgxCompanyRepository
func NewPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portRepo.CompanyRepository = (*PgxCompanyRepository)(nil)

// GetDefaultCurrency returns the default currency code of a company.
func (r *PgxCompanyRepository) GetDefaultCurrency(ctx context.Context, companyID string) (string, error) {
	query := `SELECT default_currency FROM companies WHERE company_id = $1`

	var currency string
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(&currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("company %s: %w", companyID, apperrors.ErrNotFound)
		}
		return "", apperrors.NewAppError(500, "failed to query company", err)
	}
	return currency, nil
}
