package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// purchaseHandler handles HTTP requests for purchase records and their postings.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(purchaseService portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: purchaseService,
	}
}

// registerPurchaseRoutes registers all purchase-related routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.postPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchase)
		purchases.GET("/:purchaseID/outstanding", h.getOutstanding)
		purchases.POST("/:purchaseID/returns", h.postReturn)
		purchases.GET("/:purchaseID/returns", h.listReturns)
		purchases.POST("/:purchaseID/repayments", h.postRepayment)
		purchases.DELETE("/:purchaseID", h.deletePurchase)
	}
}

// postPurchase godoc
// @Summary Post a stock purchase
// @Description Creates a PURCHASE record, adds stock and records the cash paid out, atomically
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase draft"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to post purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) postPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.PostPurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post purchase")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchases
// @Description Retrieves a page of purchase records, newest first
// @Tags purchases
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 500 {object} ErrorResponse "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getPurchase godoc
// @Summary Get a purchase
// @Description Retrieves a purchase record with its items and payment history
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve purchase")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// getOutstanding godoc
// @Summary Get the outstanding balance of a purchase
// @Description Returns the unpaid remainder owed to the supplier, floored at zero
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.OutstandingResponse
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to compute outstanding balance"
// @Security BearerAuth
// @Router /purchases/{purchaseID}/outstanding [get]
func (h *purchaseHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	outstanding, err := h.purchaseService.GetOutstanding(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute outstanding balance")
		return
	}

	c.JSON(http.StatusOK, dto.OutstandingResponse{RecordID: purchaseID, Outstanding: outstanding})
}

// postReturn godoc
// @Summary Post a return against a purchase
// @Description Creates a RETURN record: removes stock, cuts any outstanding supplier debt first and receives the remainder in cash
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchaseID path string true "Original purchase ID"
// @Param   return body dto.CreateReturnRequest true "Return draft"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 409 {object} ErrorResponse "Record cannot be returned"
// @Failure 500 {object} ErrorResponse "Failed to post return"
// @Security BearerAuth
// @Router /purchases/{purchaseID}/returns [post]
func (h *purchaseHandler) postReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post purchase return", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ret, err := h.purchaseService.PostReturn(c.Request.Context(), purchaseID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post return")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(ret))
}

// listReturns godoc
// @Summary List returns of a purchase
// @Description Retrieves every RETURN record posted against the purchase, items included
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Original purchase ID"
// @Success 200 {object} dto.PurchaseReturnsResponse
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to list returns"
// @Security BearerAuth
// @Router /purchases/{purchaseID}/returns [get]
func (h *purchaseHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	returns, err := h.purchaseService.ListReturns(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list returns")
		return
	}

	resp := dto.PurchaseReturnsResponse{Returns: make([]dto.PurchaseResponse, len(returns))}
	for i := range returns {
		resp.Returns[i] = dto.ToPurchaseResponse(&returns[i])
	}
	c.JSON(http.StatusOK, resp)
}

// postRepayment godoc
// @Summary Post a repayment against a purchase
// @Description Settles part or all of the outstanding payable to the supplier and records the cash paid out
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Param   repayment body dto.CreateRepaymentRequest true "Repayment draft"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 409 {object} ErrorResponse "Payment exceeds the outstanding balance"
// @Failure 500 {object} ErrorResponse "Failed to post repayment"
// @Security BearerAuth
// @Router /purchases/{purchaseID}/repayments [post]
func (h *purchaseHandler) postRepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var req dto.CreateRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post supplier repayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.purchaseService.PostRepayment(c.Request.Context(), purchaseID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post repayment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(updated))
}

// deletePurchase godoc
// @Summary Delete a purchase with cascade
// @Description Reverses stock and cash effects of the record and its returns, then removes them
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete purchase")
		return
	}

	c.Status(http.StatusNoContent)
}
