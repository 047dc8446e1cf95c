package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer.
type RepositoryProvider struct {
	LedgerRepo     LedgerRepository
	CompanyRepo    CompanyRepository
	FiscalYearRepo FiscalYearRepository
}
