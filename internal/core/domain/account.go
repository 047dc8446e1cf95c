package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RootType defines the fundamental accounting category of an account.
type RootType string

const (
	Asset     RootType = "Asset"
	Liability RootType = "Liability"
	Equity    RootType = "Equity"
	Income    RootType = "Income"
	Expense   RootType = "Expense"
)

// NormalSide is the side on which an account's balance normally sits.
type NormalSide string

const (
	Debit  NormalSide = "Debit"
	Credit NormalSide = "Credit"
)

// SubAccountType partitions accounts within a root type into report-line
// buckets (e.g. every "Receivable Account" lands on the receivables line
// of the balance sheet).
type SubAccountType string

const (
	CashAccount                    SubAccountType = "Cash Account"
	ReceivableAccount              SubAccountType = "Receivable Account"
	InventoryAccount               SubAccountType = "Inventory Account"
	OtherCurrentAssetAccount       SubAccountType = "Other Current Asset Account"
	FixedAssetAccount              SubAccountType = "Fixed Asset Account"
	AccumulatedDepreciationAccount SubAccountType = "Accumulated Depreciation Account"
	BusinessLiabilityAccount       SubAccountType = "Business Liability Account"
	OtherCurrentLiabilityAccount   SubAccountType = "Other Current Liability Account"
	EquityAccount                  SubAccountType = "Equity Account"
	CostOfGoodsSoldAccount         SubAccountType = "Cost of Goods Sold Account"
	OtherIncomeAccount             SubAccountType = "Other Income Account"
	OtherExpenseAccount            SubAccountType = "Other Expense Account"
)

// AccountRow is one line of a financial statement: a leaf account, a group
// account, or a synthesized subtotal. Values maps period keys to the signed
// amount for that period; Total accumulates those values in period-list
// order as they are written.
//
// The zero value is a blank spacer row.
type AccountRow struct {
	Account        string                     `json:"account"`
	AccountName    string                     `json:"accountName"`
	ParentAccount  string                     `json:"parentAccount,omitempty"`
	RootType       RootType                   `json:"rootType,omitempty"`
	AccountType    SubAccountType             `json:"accountType,omitempty"`
	Currency       string                     `json:"currency,omitempty"`
	IsGroup        bool                       `json:"isGroup"`
	Indent         float64                    `json:"indent"`
	YearStartDate  time.Time                  `json:"yearStartDate,omitempty"`
	YearEndDate    time.Time                  `json:"yearEndDate,omitempty"`
	OpeningBalance decimal.Decimal            `json:"openingBalance"`
	Values         map[string]decimal.Decimal `json:"values,omitempty"`
	Total          decimal.Decimal            `json:"total"`
	WarnIfNegative bool                       `json:"warnIfNegative,omitempty"`
	HasValue       bool                       `json:"hasValue,omitempty"`
}

// IsBlank reports whether the row is a spacer between report sections.
func (r AccountRow) IsBlank() bool {
	return r.Account == "" && r.AccountName == "" && !r.IsGroup
}

// Value returns the amount stored for a period key, or zero when the key is
// absent or the row carries no values at all.
func (r AccountRow) Value(key string) decimal.Decimal {
	if r.Values == nil {
		return decimal.Zero
	}
	return r.Values[key]
}

// SetValue stores an amount for a period key, allocating the value map on
// first use.
func (r *AccountRow) SetValue(key string, v decimal.Decimal) {
	if r.Values == nil {
		r.Values = make(map[string]decimal.Decimal)
	}
	r.Values[key] = v
}
