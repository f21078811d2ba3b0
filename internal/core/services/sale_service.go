package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
	"github.com/tokosakti/pos_ledger_app/internal/utils/allocation"
)

var (
	ErrBankRequired    = fmt.Errorf("%w: bank selection is required for transfer payments", apperrors.ErrValidation)
	ErrChangeExceeds   = fmt.Errorf("%w: change cannot exceed the amount paid", apperrors.ErrValidation)
	ErrPaidExceeds     = fmt.Errorf("%w: amount paid net of change exceeds the record total", apperrors.ErrValidation)
	ErrReturnOfReturn  = fmt.Errorf("%w: a return record cannot be returned again", apperrors.ErrConflict)
	ErrNothingToReturn = fmt.Errorf("%w: no line has remaining returnable quantity", apperrors.ErrValidation)
	ErrLineNotOnRecord = fmt.Errorf("%w: returned product is not on the original record", apperrors.ErrValidation)
	ErrExcessReturnQty = fmt.Errorf("%w: return quantity exceeds the remaining quantity", apperrors.ErrValidation)
	ErrOverRepayment   = fmt.Errorf("%w: payment exceeds the outstanding balance", apperrors.ErrValidation)
	ErrRepayReturn     = fmt.Errorf("%w: a return record has no balance to settle", apperrors.ErrValidation)
)

// saleService implements the sale-side posters and the cascade deleter.
type saleService struct {
	saleRepo    portsrepo.SaleRepositoryWithTx
	productRepo portsrepo.ProductReader
	bankRepo    portsrepo.BankRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, productRepo portsrepo.ProductReader, bankRepo portsrepo.BankRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		bankRepo:    bankRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// validatePaymentTarget checks the method/bank pairing shared by every poster.
func (s *saleService) validatePaymentTarget(ctx context.Context, method domain.PaymentMethod, bankID *string) error {
	if method != domain.MethodTransfer {
		return nil
	}
	if bankID == nil || *bankID == "" {
		return ErrBankRequired
	}
	if _, err := s.bankRepo.FindBankByID(ctx, *bankID); err != nil {
		return fmt.Errorf("%w: bank %s not found", apperrors.ErrValidation, *bankID)
	}
	return nil
}

// attributionName resolves the display name for cash ledger attribution.
// A missing user is tolerated; attribution then carries only the id.
func (s *saleService) attributionName(ctx context.Context, userID string) string {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}

// PostSale creates a SALE record, its stock deltas and its cash entry as one
// atomic posting.
func (s *saleService) PostSale(ctx context.Context, req dto.CreateSaleRequest, cashierID string) (*domain.SaleRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validatePaymentTarget(ctx, req.PaymentMethod, req.BankID); err != nil {
		return nil, err
	}
	if req.Change.GreaterThan(req.AmountPaid) {
		return nil, ErrChangeExceeds
	}

	productIDs := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		productIDs = append(productIDs, it.ProductID)
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		logger.Error("Failed to fetch products for sale posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	items := make([]domain.LineItem, len(req.Items))
	total := decimal.Zero
	for i, it := range req.Items {
		li := domain.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		if p, found := products[it.ProductID]; found {
			li.ProductName = p.Name
			li.UnitCost = p.UnitCost
			if li.UnitPrice.IsZero() {
				li.UnitPrice = p.UnitPrice
			}
		} else if li.UnitPrice.IsZero() {
			// Without a catalog entry there is no price to fall back on.
			return nil, fmt.Errorf("%w: product %s not found and no unit price given", apperrors.ErrValidation, it.ProductID)
		}
		items[i] = li
		total = total.Add(li.Subtotal())
	}

	netCash := req.AmountPaid.Sub(req.Change)
	if netCash.GreaterThan(total) {
		return nil, ErrPaidExceeds
	}

	now := time.Now().UTC()
	saleDate := now
	if req.Date != nil {
		saleDate = req.Date.UTC()
	}

	sale := domain.SaleRecord{
		SaleID:        uuid.NewString(),
		Kind:          domain.KindSale,
		SaleDate:      saleDate,
		Items:         items,
		TotalAmount:   total,
		AmountPaid:    req.AmountPaid,
		Change:        req.Change,
		PaymentStatus: domain.DerivePaymentStatus(total, req.AmountPaid),
		PaymentMethod: req.PaymentMethod,
		BankID:        req.BankID,
		CustomerName:  req.CustomerName,
		CashierID:     cashierID,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	stockDeltas := make(map[string]int64, len(items))
	for _, li := range items {
		stockDeltas[li.ProductID] -= li.Quantity
	}

	// One cash entry for the net money received, unless the caller suppressed
	// the cash flow or nothing actually entered the till.
	var cashEntry *domain.CashEntry
	if !req.SkipCashFlow && netCash.IsPositive() {
		cashEntry = s.buildCashEntry(ctx, domain.CashIn, netCash, domain.CategorySale, saleDescription(sale.CustomerName), sale.PaymentMethod, sale.BankID, sale.SaleID, cashierID, now)
	}

	if err := s.saleRepo.CreateSale(ctx, sale, stockDeltas, cashEntry); err != nil {
		logger.Error("Failed to post sale", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to post sale: %w", err)
	}

	logger.Info("Sale posted", slog.String("sale_id", sale.SaleID), slog.String("status", string(sale.PaymentStatus)))
	return &sale, nil
}

func saleDescription(customer string) string {
	if customer == "" {
		return "Penjualan"
	}
	return "Penjualan - " + customer
}

func (s *saleService) buildCashEntry(ctx context.Context, direction domain.CashDirection, amount decimal.Decimal, category, description string, method domain.PaymentMethod, bankID *string, referenceID, userID string, now time.Time) *domain.CashEntry {
	ref := referenceID
	return &domain.CashEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   now,
		Direction:   direction,
		Amount:      amount,
		Category:    category,
		Description: description,
		Method:      method,
		BankID:      bankID,
		ReferenceID: &ref,
		UserID:      userID,
		UserName:    s.attributionName(ctx, userID),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// PostReturn posts a RETURN record against a sale. The refund value first cuts
// any outstanding receivable on the original record; only the remainder, if
// any, leaves the till as cash.
func (s *saleService) PostReturn(ctx context.Context, originalSaleID string, req dto.CreateReturnRequest, cashierID string) (*domain.SaleRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.saleRepo.FindSaleByID(ctx, originalSaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", originalSaleID, err)
	}
	if original.Kind == domain.KindReturn {
		return nil, ErrReturnOfReturn
	}
	if err := s.validatePaymentTarget(ctx, req.PaymentMethod, req.BankID); err != nil {
		return nil, err
	}

	alreadyReturned, err := s.saleRepo.SumReturnedQuantities(ctx, originalSaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum returned quantities for sale %s: %w", originalSaleID, err)
	}

	items, refundValue, err := buildReturnItems(original.Items, alreadyReturned, req.Items)
	if err != nil {
		return nil, err
	}

	outstanding := original.Outstanding()
	cutDebt, cashRefund, err := allocation.Split(outstanding, refundValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	returnID := uuid.NewString()

	ret := domain.SaleRecord{
		SaleID:         returnID,
		Kind:           domain.KindReturn,
		OriginalSaleID: &original.SaleID,
		SaleDate:       now,
		Items:          items,
		TotalAmount:    refundValue.Neg(),
		AmountPaid:     refundValue.Neg(), // a return is settled the moment it is posted
		PaymentStatus:  domain.StatusPaid,
		PaymentMethod:  req.PaymentMethod,
		BankID:         req.BankID,
		CustomerName:   original.CustomerName,
		CashierID:      cashierID,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	var debtCut *domain.PaymentEntry
	if cutDebt.IsPositive() {
		debtCut = &domain.PaymentEntry{
			PaymentID: uuid.NewString(),
			PaidAt:    now,
			Amount:    cutDebt,
			Method:    domain.MethodCash,
			Note:      fmt.Sprintf("Potong Utang (Retur %s)", returnID),
			CreatedBy: cashierID,
		}
		ret.DebtCutPaymentID = &debtCut.PaymentID
	}

	// Restoring stock: the inverse of the sale's original deduction.
	stockDeltas := make(map[string]int64, len(items))
	for _, li := range items {
		stockDeltas[li.ProductID] += li.Quantity
	}

	// When no debt was cut the return's own posting carries the full refund;
	// when debt absorbed part of it only the cash remainder is paid out.
	var cashEntry *domain.CashEntry
	payout := decimal.Zero
	if debtCut == nil {
		payout = refundValue
	} else if cashRefund.IsPositive() {
		payout = cashRefund
	}
	if payout.IsPositive() {
		cashEntry = s.buildCashEntry(ctx, domain.CashOut, payout, domain.CategorySaleReturn, returnDescription(original.CustomerName), req.PaymentMethod, req.BankID, returnID, cashierID, now)
	}

	if err := s.saleRepo.CreateSaleReturn(ctx, ret, debtCut, stockDeltas, cashEntry); err != nil {
		logger.Error("Failed to post sale return", slog.String("error", err.Error()), slog.String("original_sale_id", originalSaleID))
		return nil, fmt.Errorf("failed to post sale return: %w", err)
	}

	logger.Info("Sale return posted",
		slog.String("return_id", returnID),
		slog.String("original_sale_id", originalSaleID),
		slog.String("cut_debt", cutDebt.String()),
		slog.String("cash_refund", cashRefund.String()),
	)
	return &ret, nil
}

func returnDescription(customer string) string {
	if customer == "" {
		return "Retur Penjualan"
	}
	return "Retur Penjualan - " + customer
}

// buildReturnItems validates the requested quantities against what is still
// returnable and prices each returned line at the original final price.
func buildReturnItems(originalItems []domain.LineItem, alreadyReturned map[string]int64, requested []dto.ReturnItemRequest) ([]domain.LineItem, decimal.Decimal, error) {
	byProduct := make(map[string]domain.LineItem, len(originalItems))
	for _, li := range originalItems {
		byProduct[li.ProductID] = li
	}

	items := make([]domain.LineItem, 0, len(requested))
	refund := decimal.Zero
	for _, r := range requested {
		orig, found := byProduct[r.ProductID]
		if !found {
			return nil, decimal.Zero, ErrLineNotOnRecord
		}
		remaining := orig.Quantity - alreadyReturned[r.ProductID]
		if remaining <= 0 {
			return nil, decimal.Zero, ErrNothingToReturn
		}
		if r.Quantity > remaining {
			return nil, decimal.Zero, ErrExcessReturnQty
		}
		li := domain.LineItem{
			ProductID:   orig.ProductID,
			ProductName: orig.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   orig.UnitPrice,
			UnitCost:    orig.UnitCost,
		}
		items = append(items, li)
		refund = refund.Add(li.Subtotal())
	}

	if len(items) == 0 || !refund.IsPositive() {
		return nil, decimal.Zero, ErrNothingToReturn
	}
	return items, refund, nil
}

// PostRepayment settles part or all of the sale's outstanding receivable.
func (s *saleService) PostRepayment(ctx context.Context, saleID string, req dto.CreateRepaymentRequest, cashierID string) (*domain.SaleRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	if sale.Kind == domain.KindReturn {
		return nil, ErrRepayReturn
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if err := s.validatePaymentTarget(ctx, req.PaymentMethod, req.BankID); err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(sale.Outstanding()) {
		return nil, ErrOverRepayment
	}

	now := time.Now().UTC()
	payment := domain.PaymentEntry{
		PaymentID: uuid.NewString(),
		PaidAt:    now,
		Amount:    req.Amount,
		Method:    req.PaymentMethod,
		BankID:    req.BankID,
		Note:      req.Note,
		CreatedBy: cashierID,
	}

	cashEntry := s.buildCashEntry(ctx, domain.CashIn, req.Amount, domain.CategoryReceivableSettlement, settlementDescription(sale.CustomerName), req.PaymentMethod, req.BankID, saleID, cashierID, now)

	updated, err := s.saleRepo.AddSaleRepayment(ctx, saleID, payment, *cashEntry)
	if err != nil {
		logger.Error("Failed to post repayment", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to post repayment: %w", err)
	}

	logger.Info("Repayment posted", slog.String("sale_id", saleID), slog.String("amount", req.Amount.String()), slog.String("status", string(updated.PaymentStatus)))
	return updated, nil
}

func settlementDescription(customer string) string {
	if customer == "" {
		return "Pelunasan Piutang"
	}
	return "Pelunasan Piutang - " + customer
}

// DeleteSale reverses every side effect of the record (stock, cash entries,
// child returns, restored debt) and removes it, all in one transaction.
func (s *saleService) DeleteSale(ctx context.Context, saleID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.saleRepo.DeleteSaleCascade(ctx, saleID); err != nil {
		logger.Error("Failed to delete sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return fmt.Errorf("failed to delete sale %s: %w", saleID, err)
	}

	logger.Info("Sale deleted with cascade", slog.String("sale_id", saleID))
	return nil
}

// GetSaleByID retrieves a sale with items and payment history.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale, nil
}

// ListReturns retrieves the RETURN records posted against the sale, items
// included, oldest first.
func (s *saleService) ListReturns(ctx context.Context, saleID string) ([]domain.SaleRecord, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	returns, err := s.saleRepo.FindReturnsByOriginalSaleID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns of sale %s: %w", saleID, err)
	}
	return returns, nil
}

// GetOutstanding returns the unpaid remainder of the sale.
func (s *saleService) GetOutstanding(ctx context.Context, saleID string) (decimal.Decimal, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale.Outstanding(), nil
}

// ListSales retrieves a page of sale records.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	responses := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		responses[i] = dto.ToSaleResponse(&sales[i])
	}
	return &dto.ListSalesResponse{Sales: responses, NextToken: nextToken}, nil
}
