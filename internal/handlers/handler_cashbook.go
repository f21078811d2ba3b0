package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// cashbookHandler handles HTTP requests for the cash ledger.
type cashbookHandler struct {
	cashbookService portssvc.CashbookSvcFacade
}

// newCashbookHandler creates a new cashbookHandler.
func newCashbookHandler(cashbookService portssvc.CashbookSvcFacade) *cashbookHandler {
	return &cashbookHandler{
		cashbookService: cashbookService,
	}
}

// registerCashbookRoutes registers all cashbook routes.
func registerCashbookRoutes(rg *gin.RouterGroup, cashbookService portssvc.CashbookSvcFacade) {
	h := newCashbookHandler(cashbookService)

	cashbook := rg.Group("/cashbook")
	{
		cashbook.POST("", h.createEntry)
		cashbook.GET("", h.listEntries)
		cashbook.GET("/:entryID", h.getEntry)
		cashbook.DELETE("/:entryID", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record a manual cash entry
// @Description Creates a free-standing cash movement; system categories are rejected
// @Tags cashbook
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCashEntryRequest true "Cash entry draft"
// @Success 201 {object} dto.CashEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input or reserved category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create cash entry"
// @Security BearerAuth
// @Router /cashbook [post]
func (h *cashbookHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create cash entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.cashbookService.CreateManualEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create cash entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashEntryResponse(entry))
}

// listEntries godoc
// @Summary List cash entries
// @Description Retrieves a page of the cash ledger, newest first, optionally filtered by direction
// @Tags cashbook
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Param   direction query string false "IN or OUT"
// @Success 200 {object} dto.ListCashEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Failed to list cash entries"
// @Security BearerAuth
// @Router /cashbook [get]
func (h *cashbookHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCashEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.cashbookService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list cash entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a cash entry
// @Description Retrieves a single cash ledger row
// @Tags cashbook
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.CashEntryResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve cash entry"
// @Security BearerAuth
// @Router /cashbook/{entryID} [get]
func (h *cashbookHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.cashbookService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve cash entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a manual cash entry
// @Description Removes a manual entry; system-generated entries are protected
// @Tags cashbook
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "System-generated entry"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to delete cash entry"
// @Security BearerAuth
// @Router /cashbook/{entryID} [delete]
func (h *cashbookHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.cashbookService.DeleteManualEntry(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete cash entry")
		return
	}

	c.Status(http.StatusNoContent)
}
