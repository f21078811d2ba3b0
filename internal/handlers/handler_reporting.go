package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the derived report views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/receivables", h.listReceivables)
		reports.GET("/payables", h.listPayables)
		reports.GET("/cashflow", h.cashflowReport)
	}
}

// listReceivables godoc
// @Summary List receivables
// @Description Returns sales with money still owed by customers, oldest first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ReceivablesResponse
// @Failure 500 {object} ErrorResponse "Failed to list receivables"
// @Security BearerAuth
// @Router /reports/receivables [get]
func (h *reportingHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.reportingService.ListReceivables(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list receivables")
		return
	}

	resp := dto.ReceivablesResponse{Receivables: make([]dto.SaleResponse, len(sales))}
	for i := range sales {
		resp.Receivables[i] = dto.ToSaleResponse(&sales[i])
	}
	c.JSON(http.StatusOK, resp)
}

// listPayables godoc
// @Summary List payables
// @Description Returns purchases with money still owed to suppliers, oldest first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.PayablesResponse
// @Failure 500 {object} ErrorResponse "Failed to list payables"
// @Security BearerAuth
// @Router /reports/payables [get]
func (h *reportingHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	purchases, err := h.reportingService.ListPayables(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payables")
		return
	}

	resp := dto.PayablesResponse{Payables: make([]dto.PurchaseResponse, len(purchases))}
	for i := range purchases {
		resp.Payables[i] = dto.ToPurchaseResponse(&purchases[i])
	}
	c.JSON(http.StatusOK, resp)
}

// cashflowReport godoc
// @Summary Cashflow report
// @Description Aggregates the cash ledger for the period into per-category totals; defaults to the current month
// @Tags reports
// @Produce  json
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashflowReportResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 500 {object} ErrorResponse "Failed to build cashflow report"
// @Security BearerAuth
// @Router /reports/cashflow [get]
func (h *reportingHandler) cashflowReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CashflowReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now
	if params.From != nil {
		from = params.From.UTC()
	}
	if params.To != nil {
		// Include the whole end day.
		to = params.To.UTC().Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Period end is before period start"})
		return
	}

	summary, err := h.reportingService.CashflowReport(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build cashflow report")
		return
	}

	c.JSON(http.StatusOK, dto.CashflowReportResponse{From: from, To: to, Summary: *summary})
}
