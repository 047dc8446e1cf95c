package statements

import (
	"github.com/greekrode/erpnext/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildColumns produces the ordered column descriptors for a statement:
// account_name first, a hidden currency column when the report was run for
// a specific company, then one column per period.
func BuildColumns(periodicity domain.Periodicity, periods []domain.PeriodDescriptor, accumulated bool, company string) []domain.Column {
	columns := []domain.Column{
		{
			Fieldname: "account_name",
			Label:     "Account",
			Fieldtype: "Data",
			Width:     350,
		},
	}

	if company != "" {
		columns = append(columns, domain.Column{
			Fieldname: "currency",
			Label:     "Currency",
			Fieldtype: "Link",
			Options:   "Currency",
			Hidden:    true,
		})
	}

	for _, p := range periods {
		columns = append(columns, domain.Column{
			Fieldname: p.Key,
			Label:     p.Label,
			Fieldtype: "Currency",
			Options:   "currency",
			Width:     250,
		})
	}

	return columns
}

// periodColumns filters the column list down to the period columns.
func periodColumns(columns []domain.Column) []domain.Column {
	var cols []domain.Column
	for _, c := range columns {
		if c.Fieldname == "account_name" || c.Fieldname == "currency" {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// FinalizeRows normalizes the assembled row sequence before it is returned:
// every non-blank row gets an explicit (zero) value for each period key it
// is missing, so renderers never see absent cells.
func FinalizeRows(rows []domain.AccountRow, periods []domain.PeriodDescriptor) []domain.AccountRow {
	for i := range rows {
		if rows[i].IsBlank() {
			continue
		}
		for _, p := range periods {
			if _, ok := rows[i].Values[p.Key]; !ok {
				rows[i].SetValue(p.Key, decimal.Zero)
			}
		}
	}
	return rows
}
