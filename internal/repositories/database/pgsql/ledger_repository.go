package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/greekrode/erpnext/internal/apperrors"
	"github.com/greekrode/erpnext/internal/core/domain"
	portRepo "github.com/greekrode/erpnext/internal/core/ports/repositories"
	"github.com/greekrode/erpnext/internal/utils/accounting"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ledgerAccount struct {
	ID          string
	Name        string
	ParentID    string
	RootType    domain.RootType
	AccountType domain.SubAccountType
	IsGroup     bool
	Lft         int
	Rgt         int
	Currency    string
}

// PgxLedgerRepository implements the LedgerRepository interface using pgx
type PgxLedgerRepository struct {
	BaseRepository
}

// NewPgxLedgerRepository creates a new PgxLedgerRepository
func NewPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portRepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// GetRows returns the ordered row sequence for one ledger query: group and
// leaf account rows in tree order, followed by a total row carrying the
// sequence's opening balance. A sequence with no postings at all comes back
// nil so the report assembler can suppress the whole section.
//
// The accounts, per-period balances and opening balance are read inside one
// repeatable-read transaction, so concurrent postings cannot skew one period
// against another.
func (r *PgxLedgerRepository) GetRows(ctx context.Context, q portRepo.LedgerQuery) ([]domain.AccountRow, error) {
	if len(q.Periods) == 0 {
		return nil, nil
	}

	tx, err := r.BeginRead(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	accounts, err := r.fetchAccounts(ctx, tx, q)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}

	leafIDs := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if !a.IsGroup {
			leafIDs = append(leafIDs, a.ID)
		}
	}
	if len(leafIDs) == 0 {
		return nil, nil
	}

	balances, err := r.fetchBalances(ctx, tx, q, leafIDs)
	if err != nil {
		return nil, err
	}

	opening, err := r.fetchOpeningBalance(ctx, tx, q, leafIDs)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return assembleRows(q, accounts, balances, opening), nil
}

// fetchAccounts loads every group and leaf account participating in the
// query, in nested-set order. Group rows are pulled in through the leaves
// they contain so bucket filters only ever apply to leaf accounts.
func (r *PgxLedgerRepository) fetchAccounts(ctx context.Context, db Querier, q portRepo.LedgerQuery) ([]ledgerAccount, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT DISTINCT a.account_id, a.account_name, COALESCE(a.parent_account_id, ''),
		       a.root_type, COALESCE(a.account_type, ''), a.is_group, a.lft, a.rgt,
		       COALESCE(a.currency_code, '')
		FROM accounts a
		JOIN accounts leaf
		  ON leaf.company_id = a.company_id
		 AND leaf.lft BETWEEN a.lft AND a.rgt
		 AND leaf.is_group = FALSE
		WHERE a.company_id = $1
		  AND a.root_type = $2
		  AND leaf.root_type = $2`)
	args := []any{q.Company, string(q.RootType)}

	if q.SubAccountType != "" {
		args = append(args, string(q.SubAccountType))
		fmt.Fprintf(&sb, " AND leaf.account_type = $%d", len(args))
	}
	if q.AccountType != "" {
		args = append(args, string(q.AccountType))
		fmt.Fprintf(&sb, " AND leaf.account_type = $%d", len(args))
	}
	if q.COGSOnly {
		args = append(args, string(domain.CostOfGoodsSoldAccount))
		fmt.Fprintf(&sb, " AND leaf.account_type = $%d", len(args))
	}
	if len(q.ExcludeAccountTypes) > 0 {
		excluded := make([]string, len(q.ExcludeAccountTypes))
		for i, t := range q.ExcludeAccountTypes {
			excluded[i] = string(t)
		}
		args = append(args, excluded)
		fmt.Fprintf(&sb, " AND (leaf.account_type IS NULL OR leaf.account_type <> ALL($%d))", len(args))
	}
	sb.WriteString(" ORDER BY a.lft")

	rows, err := db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []ledgerAccount
	for rows.Next() {
		var a ledgerAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.ParentID, &a.RootType, &a.AccountType,
			&a.IsGroup, &a.Lft, &a.Rgt, &a.Currency); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read accounts", err)
	}
	return accounts, nil
}

// fetchBalances sums debits and credits per leaf account for every period.
// Balance sheet root types report the running balance as of each period end;
// profit and loss root types report the movement inside the period, or the
// fiscal-year-to-date movement when accumulated values are requested.
func (r *PgxLedgerRepository) fetchBalances(ctx context.Context, db Querier, q portRepo.LedgerQuery, leafIDs []string) (map[string]map[string]decimal.Decimal, error) {
	asOf := q.RootType == domain.Asset || q.RootType == domain.Liability || q.RootType == domain.Equity

	balances := make(map[string]map[string]decimal.Decimal, len(leafIDs))
	for _, p := range q.Periods {
		var sb strings.Builder
		sb.WriteString(`
			SELECT account_id, COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
			FROM gl_entries
			WHERE company_id = $1
			  AND account_id = ANY($2)
			  AND posting_date <= $3`)
		args := []any{q.Company, leafIDs, p.ToDate}

		if !asOf {
			from := p.FromDate
			if q.AccumulatedValues {
				from = p.YearStartDate
			}
			args = append(args, from)
			fmt.Fprintf(&sb, " AND posting_date >= $%d", len(args))
		}
		if q.IgnoreClosingEntries {
			sb.WriteString(" AND voucher_type <> 'Period Closing Voucher'")
		}
		sb.WriteString(" GROUP BY account_id")

		rows, err := db.Query(ctx, sb.String(), args...)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to query ledger balances", err)
		}
		for rows.Next() {
			var accountID string
			var debit, credit decimal.Decimal
			if err := rows.Scan(&accountID, &debit, &credit); err != nil {
				rows.Close()
				return nil, apperrors.NewAppError(500, "failed to scan ledger balance", err)
			}
			if balances[accountID] == nil {
				balances[accountID] = make(map[string]decimal.Decimal, len(q.Periods))
			}
			balances[accountID][p.Key] = accounting.SignedBalance(debit, credit, q.NormalSide)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to read ledger balances", err)
		}
	}
	return balances, nil
}

// fetchOpeningBalance sums the signed balance of all postings before the
// first reported fiscal year starts.
func (r *PgxLedgerRepository) fetchOpeningBalance(ctx context.Context, db Querier, q portRepo.LedgerQuery, leafIDs []string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM gl_entries
		WHERE company_id = $1
		  AND account_id = ANY($2)
		  AND posting_date < $3`
	args := []any{q.Company, leafIDs, q.Periods[0].YearStartDate}
	if q.IgnoreClosingEntries {
		query += " AND voucher_type <> 'Period Closing Voucher'"
	}

	var debit, credit decimal.Decimal
	if err := db.QueryRow(ctx, query, args...).Scan(&debit, &credit); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to query opening balance", err)
	}
	return accounting.SignedBalance(debit, credit, q.NormalSide), nil
}

// assembleRows turns the flat account list and leaf balances into the report
// row sequence: tagged group headers interleaved with leaf rows in tree
// order, zero-only subtrees pruned, and a grand-total placeholder row
// appended carrying the sequence's opening balance.
//
// Only leaf rows carry period values. The aggregation engine sums whole
// sequences, so rolled-up group values or a pre-filled total row would count
// every posting twice; the total placeholder is overwritten downstream where
// a statement needs it filled.
func assembleRows(q portRepo.LedgerQuery, accounts []ledgerAccount, balances map[string]map[string]decimal.Decimal, opening decimal.Decimal) []domain.AccountRow {
	liveLeaves := make(map[string]ledgerAccount)
	for _, a := range accounts {
		if a.IsGroup {
			continue
		}
		for _, v := range balances[a.ID] {
			if !v.IsZero() {
				liveLeaves[a.ID] = a
				break
			}
		}
	}
	if len(liveLeaves) == 0 && opening.IsZero() {
		return nil
	}

	indents := computeIndents(accounts)

	var rows []domain.AccountRow
	for _, a := range accounts {
		if a.IsGroup {
			if !containsLiveLeaf(a, liveLeaves) {
				continue
			}
		} else if _, ok := liveLeaves[a.ID]; !ok {
			continue
		}

		row := domain.AccountRow{
			Account:        a.ID,
			AccountName:    a.Name,
			ParentAccount:  a.ParentID,
			RootType:       a.RootType,
			AccountType:    a.AccountType,
			Currency:       a.Currency,
			IsGroup:        a.IsGroup,
			Indent:         indents[a.ID],
			YearStartDate:  q.Periods[0].YearStartDate,
			YearEndDate:    q.Periods[len(q.Periods)-1].YearEndDate,
			WarnIfNegative: q.NormalSide == domain.Debit,
			HasValue:       a.IsGroup,
		}
		if !a.IsGroup {
			running := decimal.Zero
			for _, p := range q.Periods {
				v := balances[a.ID][p.Key]
				row.SetValue(p.Key, v)
				running = running.Add(v)
			}
			row.Total = running
			row.HasValue = true
		}
		rows = append(rows, row)
	}

	rows = append(rows, totalPlaceholderRow(q, opening))
	return rows
}

func containsLiveLeaf(group ledgerAccount, liveLeaves map[string]ledgerAccount) bool {
	for _, leaf := range liveLeaves {
		if group.Lft <= leaf.Lft && group.Rgt >= leaf.Rgt {
			return true
		}
	}
	return false
}

// computeIndents derives a render depth for each account from its parent
// chain, treating accounts whose parent fell outside the selection as roots.
func computeIndents(accounts []ledgerAccount) map[string]float64 {
	byID := make(map[string]ledgerAccount, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	indents := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		depth := 0.0
		parent := a.ParentID
		for parent != "" {
			p, ok := byID[parent]
			if !ok {
				break
			}
			depth++
			parent = p.ParentID
		}
		indents[a.ID] = depth
	}
	return indents
}

// totalPlaceholderRow closes a sequence: it carries the opening balance and
// the grand-total label, with its period values left empty.
func totalPlaceholderRow(q portRepo.LedgerQuery, opening decimal.Decimal) domain.AccountRow {
	label := string(q.RootType)
	if q.SubAccountType != "" {
		label = string(q.SubAccountType)
	}
	return domain.AccountRow{
		Account:        fmt.Sprintf("'Total %s (%s)'", label, q.NormalSide),
		AccountName:    fmt.Sprintf("Total %s (%s)", label, q.NormalSide),
		RootType:       q.RootType,
		OpeningBalance: opening,
		YearStartDate:  q.Periods[0].YearStartDate,
		YearEndDate:    q.Periods[len(q.Periods)-1].YearEndDate,
		HasValue:       true,
	}
}
