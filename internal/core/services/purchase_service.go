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

// purchaseService is the supplier-side mirror of saleService: stock moves in on
// purchase and out on return, cash moves out on purchase and in on return.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryWithTx
	productRepo  portsrepo.ProductReader
	bankRepo     portsrepo.BankRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryWithTx, productRepo portsrepo.ProductReader, bankRepo portsrepo.BankRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		bankRepo:     bankRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) validatePaymentTarget(ctx context.Context, method domain.PaymentMethod, bankID *string) error {
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

func (s *purchaseService) attributionName(ctx context.Context, userID string) string {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}

func (s *purchaseService) buildCashEntry(ctx context.Context, direction domain.CashDirection, amount decimal.Decimal, category, description string, method domain.PaymentMethod, bankID *string, referenceID, userID string, now time.Time) *domain.CashEntry {
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

// PostPurchase creates a PURCHASE record, adds the bought quantities to stock
// and records the money paid out, all atomically.
func (s *purchaseService) PostPurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validatePaymentTarget(ctx, req.PaymentMethod, req.BankID); err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		productIDs = append(productIDs, it.ProductID)
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		logger.Error("Failed to fetch products for purchase posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	items := make([]domain.LineItem, len(req.Items))
	total := decimal.Zero
	for i, it := range req.Items {
		li := domain.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitCost, // on the supplier side the line price is what the store pays
			UnitCost:  it.UnitCost,
		}
		if p, found := products[it.ProductID]; found {
			li.ProductName = p.Name
		}
		items[i] = li
		total = total.Add(li.Subtotal())
	}

	if req.AmountPaid.GreaterThan(total) {
		return nil, ErrPaidExceeds
	}

	now := time.Now().UTC()
	purchaseDate := now
	if req.Date != nil {
		purchaseDate = req.Date.UTC()
	}

	purchase := domain.PurchaseRecord{
		PurchaseID:    uuid.NewString(),
		Kind:          domain.KindPurchase,
		PurchaseDate:  purchaseDate,
		Items:         items,
		TotalAmount:   total,
		AmountPaid:    req.AmountPaid,
		PaymentStatus: domain.DerivePaymentStatus(total, req.AmountPaid),
		PaymentMethod: req.PaymentMethod,
		BankID:        req.BankID,
		SupplierName:  req.SupplierName,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stockDeltas := make(map[string]int64, len(items))
	for _, li := range items {
		stockDeltas[li.ProductID] += li.Quantity
	}

	var cashEntry *domain.CashEntry
	if !req.SkipCashFlow && req.AmountPaid.IsPositive() {
		cashEntry = s.buildCashEntry(ctx, domain.CashOut, req.AmountPaid, domain.CategoryPurchase, purchaseDescription(req.SupplierName), req.PaymentMethod, req.BankID, purchase.PurchaseID, userID, now)
	}

	if err := s.purchaseRepo.CreatePurchase(ctx, purchase, stockDeltas, cashEntry); err != nil {
		logger.Error("Failed to post purchase", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to post purchase: %w", err)
	}

	logger.Info("Purchase posted", slog.String("purchase_id", purchase.PurchaseID), slog.String("status", string(purchase.PaymentStatus)))
	return &purchase, nil
}

func purchaseDescription(supplier string) string {
	if supplier == "" {
		return "Pembelian Stok"
	}
	return "Pembelian Stok - " + supplier
}

// PostReturn posts a RETURN against a purchase: stock goes back to the
// supplier, and the refund value first cuts any outstanding payable before any
// cash is received back.
func (s *purchaseService) PostReturn(ctx context.Context, originalPurchaseID string, req dto.CreateReturnRequest, userID string) (*domain.PurchaseRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.purchaseRepo.FindPurchaseByID(ctx, originalPurchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", originalPurchaseID, err)
	}
	if original.Kind == domain.KindReturn {
		return nil, ErrReturnOfReturn
	}
	if err := s.validatePaymentTarget(ctx, req.PaymentMethod, req.BankID); err != nil {
		return nil, err
	}

	alreadyReturned, err := s.purchaseRepo.SumReturnedQuantities(ctx, originalPurchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum returned quantities for purchase %s: %w", originalPurchaseID, err)
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

	ret := domain.PurchaseRecord{
		PurchaseID:         returnID,
		Kind:               domain.KindReturn,
		OriginalPurchaseID: &original.PurchaseID,
		PurchaseDate:       now,
		Items:              items,
		TotalAmount:        refundValue.Neg(),
		AmountPaid:         refundValue.Neg(),
		PaymentStatus:      domain.StatusPaid,
		PaymentMethod:      req.PaymentMethod,
		BankID:             req.BankID,
		SupplierName:       original.SupplierName,
		Note:               req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
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
			CreatedBy: userID,
		}
		ret.DebtCutPaymentID = &debtCut.PaymentID
	}

	stockDeltas := make(map[string]int64, len(items))
	for _, li := range items {
		stockDeltas[li.ProductID] -= li.Quantity
	}

	var cashEntry *domain.CashEntry
	payout := decimal.Zero
	if debtCut == nil {
		payout = refundValue
	} else if cashRefund.IsPositive() {
		payout = cashRefund
	}
	if payout.IsPositive() {
		cashEntry = s.buildCashEntry(ctx, domain.CashIn, payout, domain.CategoryPurchaseReturn, purchaseReturnDescription(original.SupplierName), req.PaymentMethod, req.BankID, returnID, userID, now)
	}

	if err := s.purchaseRepo.CreatePurchaseReturn(ctx, ret, debtCut, stockDeltas, cashEntry); err != nil {
		logger.Error("Failed to post purchase return", slog.String("error", err.Error()), slog.String("original_purchase_id", originalPurchaseID))
		return nil, fmt.Errorf("failed to post purchase return: %w", err)
	}

	logger.Info("Purchase return posted",
		slog.String("return_id", returnID),
		slog.String("original_purchase_id", originalPurchaseID),
		slog.String("cut_debt", cutDebt.String()),
		slog.String("cash_refund", cashRefund.String()),
	)
	return &ret, nil
}

func purchaseReturnDescription(supplier string) string {
	if supplier == "" {
		return "Retur Pembelian"
	}
	return "Retur Pembelian - " + supplier
}

// PostRepayment settles part or all of the outstanding payable to the supplier.
func (s *purchaseService) PostRepayment(ctx context.Context, purchaseID string, req dto.CreateRepaymentRequest, userID string) (*domain.PurchaseRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	if purchase.Kind == domain.KindReturn {
		return nil, ErrRepayReturn
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if err := s.validatePaymentTarget(ctx, req.PaymentMethod, req.BankID); err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(purchase.Outstanding()) {
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
		CreatedBy: userID,
	}

	cashEntry := s.buildCashEntry(ctx, domain.CashOut, req.Amount, domain.CategoryPayableSettlement, payableDescription(purchase.SupplierName), req.PaymentMethod, req.BankID, purchaseID, userID, now)

	updated, err := s.purchaseRepo.AddPurchaseRepayment(ctx, purchaseID, payment, *cashEntry)
	if err != nil {
		logger.Error("Failed to post supplier repayment", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return nil, fmt.Errorf("failed to post supplier repayment: %w", err)
	}

	logger.Info("Supplier repayment posted", slog.String("purchase_id", purchaseID), slog.String("amount", req.Amount.String()), slog.String("status", string(updated.PaymentStatus)))
	return updated, nil
}

func payableDescription(supplier string) string {
	if supplier == "" {
		return "Pelunasan Utang Supplier"
	}
	return "Pelunasan Utang Supplier - " + supplier
}

// DeletePurchase reverses every side effect of the record and removes it, all
// in one transaction.
func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.purchaseRepo.DeletePurchaseCascade(ctx, purchaseID); err != nil {
		logger.Error("Failed to delete purchase", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}

	logger.Info("Purchase deleted with cascade", slog.String("purchase_id", purchaseID))
	return nil
}

// GetPurchaseByID retrieves a purchase with items and payment history.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	return purchase, nil
}

// ListReturns retrieves the RETURN records posted against the purchase, items
// included, oldest first.
func (s *purchaseService) ListReturns(ctx context.Context, purchaseID string) ([]domain.PurchaseRecord, error) {
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}

	returns, err := s.purchaseRepo.FindReturnsByOriginalPurchaseID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns of purchase %s: %w", purchaseID, err)
	}
	return returns, nil
}

// GetOutstanding returns the unpaid remainder owed to the supplier.
func (s *purchaseService) GetOutstanding(ctx context.Context, purchaseID string) (decimal.Decimal, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	return purchase.Outstanding(), nil
}

// ListPurchases retrieves a page of purchase records.
func (s *purchaseService) ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	purchases, nextToken, err := s.purchaseRepo.ListPurchases(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	responses := make([]dto.PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = dto.ToPurchaseResponse(&purchases[i])
	}
	return &dto.ListPurchasesResponse{Purchases: responses, NextToken: nextToken}, nil
}
