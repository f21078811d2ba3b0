package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// saleHandler handles HTTP requests for sale records and their postings.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(saleService portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: saleService,
	}
}

// registerSaleRoutes registers all sale-related routes.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.postSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
		sales.GET("/:saleID/outstanding", h.getOutstanding)
		sales.POST("/:saleID/returns", h.postReturn)
		sales.GET("/:saleID/returns", h.listReturns)
		sales.POST("/:saleID/repayments", h.postRepayment)
		sales.DELETE("/:saleID", h.deleteSale)
	}
}

// postSale godoc
// @Summary Post a sale
// @Description Creates a SALE record, deducts stock and records the cash received, atomically
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale draft"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to post sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) postSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post sale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Cashier user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sale, err := h.saleService.PostSale(c.Request.Context(), req, cashierID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves a page of sale records, newest first
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 500 {object} ErrorResponse "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Description Retrieves a sale record with its items and payment history
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve sale"
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// getOutstanding godoc
// @Summary Get the outstanding balance of a sale
// @Description Returns the unpaid remainder of the sale, floored at zero
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.OutstandingResponse
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse "Failed to compute outstanding balance"
// @Security BearerAuth
// @Router /sales/{saleID}/outstanding [get]
func (h *saleHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	outstanding, err := h.saleService.GetOutstanding(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute outstanding balance")
		return
	}

	c.JSON(http.StatusOK, dto.OutstandingResponse{RecordID: saleID, Outstanding: outstanding})
}

// postReturn godoc
// @Summary Post a return against a sale
// @Description Creates a RETURN record: restores stock, cuts any outstanding debt first and refunds the remainder in cash
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   saleID path string true "Original sale ID"
// @Param   return body dto.CreateReturnRequest true "Return draft"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 409 {object} ErrorResponse "Record cannot be returned"
// @Failure 500 {object} ErrorResponse "Failed to post return"
// @Security BearerAuth
// @Router /sales/{saleID}/returns [post]
func (h *saleHandler) postReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post return", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Cashier user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ret, err := h.saleService.PostReturn(c.Request.Context(), saleID, req, cashierID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post return")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(ret))
}

// listReturns godoc
// @Summary List returns of a sale
// @Description Retrieves every RETURN record posted against the sale, items included
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Original sale ID"
// @Success 200 {object} dto.SaleReturnsResponse
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse "Failed to list returns"
// @Security BearerAuth
// @Router /sales/{saleID}/returns [get]
func (h *saleHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	returns, err := h.saleService.ListReturns(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list returns")
		return
	}

	resp := dto.SaleReturnsResponse{Returns: make([]dto.SaleResponse, len(returns))}
	for i := range returns {
		resp.Returns[i] = dto.ToSaleResponse(&returns[i])
	}
	c.JSON(http.StatusOK, resp)
}

// postRepayment godoc
// @Summary Post a repayment against a sale
// @Description Settles part or all of the sale's outstanding receivable and records the cash received
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Param   repayment body dto.CreateRepaymentRequest true "Repayment draft"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 409 {object} ErrorResponse "Payment exceeds the outstanding balance"
// @Failure 500 {object} ErrorResponse "Failed to post repayment"
// @Security BearerAuth
// @Router /sales/{saleID}/repayments [post]
func (h *saleHandler) postRepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	var req dto.CreateRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post repayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Cashier user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.saleService.PostRepayment(c.Request.Context(), saleID, req, cashierID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post repayment")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(updated))
}

// deleteSale godoc
// @Summary Delete a sale with cascade
// @Description Reverses stock and cash effects of the record and its returns, then removes them
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse "Failed to delete sale"
// @Security BearerAuth
// @Router /sales/{saleID} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	if err := h.saleService.DeleteSale(c.Request.Context(), saleID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete sale")
		return
	}

	c.Status(http.StatusNoContent)
}
