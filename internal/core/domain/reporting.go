package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one aggregated cashflow line.
type CategoryTotal struct {
	Category  string          `json:"category"`
	Direction CashDirection   `json:"direction"`
	Total     decimal.Decimal `json:"total"`
}

// CashflowSummary aggregates the cash ledger over a period.
type CashflowSummary struct {
	TotalIn    decimal.Decimal `json:"totalIn"`
	TotalOut   decimal.Decimal `json:"totalOut"`
	Net        decimal.Decimal `json:"net"`
	ByCategory []CategoryTotal `json:"byCategory"`
}
