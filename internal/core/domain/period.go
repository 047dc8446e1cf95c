package domain

import "time"

// Periodicity controls how fiscal years are sliced into reporting periods.
type Periodicity string

const (
	Monthly    Periodicity = "Monthly"
	Quarterly  Periodicity = "Quarterly"
	HalfYearly Periodicity = "Half-Yearly"
	Yearly     Periodicity = "Yearly"
)

// PeriodDescriptor identifies one reporting column. Key is the stable
// identifier used as the map key on every AccountRow; periods are always
// consumed in the order the period list yields them.
type PeriodDescriptor struct {
	Key           string    `json:"key"`
	Label         string    `json:"label"`
	FromDate      time.Time `json:"fromDate"`
	ToDate        time.Time `json:"toDate"`
	YearStartDate time.Time `json:"yearStartDate"`
	YearEndDate   time.Time `json:"yearEndDate"`
}

// FiscalYear is one accounting year of a company.
type FiscalYear struct {
	Name          string    `json:"name"`
	CompanyID     string    `json:"companyID"`
	YearStartDate time.Time `json:"yearStartDate"`
	YearEndDate   time.Time `json:"yearEndDate"`
	Closed        bool      `json:"closed"`
}
