package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// bankHandler handles HTTP requests for the bank directory.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

// newBankHandler creates a new bankHandler.
func newBankHandler(bankService portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{
		bankService: bankService,
	}
}

// registerBankRoutes registers all bank routes.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bankID", h.getBank)
	}
}

// createBank godoc
// @Summary Add a bank account
// @Description Adds a bank account to the directory used for transfer payments
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create bank"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create bank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankResponse(bank))
}

// listBanks godoc
// @Summary List bank accounts
// @Description Retrieves the bank directory
// @Tags banks
// @Produce  json
// @Success 200 {array} dto.BankResponse
// @Failure 500 {object} ErrorResponse "Failed to list banks"
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list banks")
		return
	}

	responses := make([]dto.BankResponse, len(banks))
	for i := range banks {
		responses[i] = dto.ToBankResponse(&banks[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getBank godoc
// @Summary Get a bank account
// @Description Retrieves a single bank account
// @Tags banks
// @Produce  json
// @Param   bankID path string true "Bank ID"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} ErrorResponse "Bank not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve bank"
// @Security BearerAuth
// @Router /banks/{bankID} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("bankID")

	bank, err := h.bankService.GetBankByID(c.Request.Context(), bankID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve bank")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}
