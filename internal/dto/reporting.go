package dto

import (
	"time"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// CashflowReportParams selects the reporting period.
type CashflowReportParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// CashflowReportResponse is the aggregated cash ledger view.
type CashflowReportResponse struct {
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	Summary domain.CashflowSummary `json:"summary"`
}

// ReceivablesResponse lists sales with money still owed by customers.
type ReceivablesResponse struct {
	Receivables []SaleResponse `json:"receivables"`
}

// PayablesResponse lists purchases with money still owed to suppliers.
type PayablesResponse struct {
	Payables []PurchaseResponse `json:"payables"`
}
