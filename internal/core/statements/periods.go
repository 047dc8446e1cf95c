package statements

import (
	"strings"
	"time"

	"github.com/greekrode/erpnext/internal/core/domain"
)

// FilterBasedOnDateRange selects explicit start/end dates instead of whole
// fiscal years when building the period list.
const FilterBasedOnDateRange = "Date Range"

func monthsPerPeriod(p domain.Periodicity) int {
	switch p {
	case domain.Monthly:
		return 1
	case domain.Quarterly:
		return 3
	case domain.HalfYearly:
		return 6
	default:
		return 12
	}
}

// BuildPeriodList slices the given fiscal years into ordered reporting
// periods. Fiscal years must already be sorted by start date; the slice
// bounds come from the first and last year, or from the explicit dates when
// filterBasedOn is "Date Range". The last period of a fiscal year is
// clamped to the year end so short years never leak into the next one.
func BuildPeriodList(fiscalYears []domain.FiscalYear, periodStart, periodEnd time.Time, filterBasedOn string, periodicity domain.Periodicity) []domain.PeriodDescriptor {
	if len(fiscalYears) == 0 {
		return nil
	}

	start := fiscalYears[0].YearStartDate
	end := fiscalYears[len(fiscalYears)-1].YearEndDate
	if filterBasedOn == FilterBasedOnDateRange {
		if !periodStart.IsZero() {
			start = periodStart
		}
		if !periodEnd.IsZero() {
			end = periodEnd
		}
	}

	months := monthsPerPeriod(periodicity)
	var periods []domain.PeriodDescriptor

	for cursor := start; !cursor.After(end); {
		to := cursor.AddDate(0, months, 0).AddDate(0, 0, -1)
		fy := containingFiscalYear(fiscalYears, cursor)
		if !fy.YearEndDate.IsZero() && to.After(fy.YearEndDate) {
			to = fy.YearEndDate
		}
		if to.After(end) {
			to = end
		}

		label := periodLabel(cursor, to, periodicity, fy)
		periods = append(periods, domain.PeriodDescriptor{
			Key:           periodKey(label),
			Label:         label,
			FromDate:      cursor,
			ToDate:        to,
			YearStartDate: fy.YearStartDate,
			YearEndDate:   fy.YearEndDate,
		})

		cursor = to.AddDate(0, 0, 1)
	}

	return periods
}

func containingFiscalYear(fiscalYears []domain.FiscalYear, date time.Time) domain.FiscalYear {
	for _, fy := range fiscalYears {
		if !date.Before(fy.YearStartDate) && !date.After(fy.YearEndDate) {
			return fy
		}
	}
	// Dates outside every fiscal year fall back to the last one.
	return fiscalYears[len(fiscalYears)-1]
}

func periodLabel(from, to time.Time, periodicity domain.Periodicity, fy domain.FiscalYear) string {
	switch periodicity {
	case domain.Monthly:
		return from.Format("Jan 2006")
	case domain.Yearly:
		if fy.Name != "" {
			return fy.Name
		}
		return from.Format("2006")
	default:
		return from.Format("Jan 2006") + " - " + to.Format("Jan 2006")
	}
}

var keyReplacer = strings.NewReplacer(" ", "_", "-", "_")

// periodKey derives the stable map key for a period from its label, e.g.
// "Apr 2024 - Jun 2024" becomes "apr_2024___jun_2024".
func periodKey(label string) string {
	return strings.ToLower(keyReplacer.Replace(label))
}
