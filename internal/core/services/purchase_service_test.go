package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/core/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockProductRepo  *MockProductRepository
	mockBankRepo     *MockBankRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.PurchaseSvcFacade

	userID  string
	product domain.Product
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockBankRepo = new(MockBankRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockProductRepo, suite.mockBankRepo, suite.mockUserRepo)

	suite.userID = uuid.NewString()
	suite.product = domain.Product{
		ProductID: uuid.NewString(),
		SKU:       "GULA-01",
		Name:      "Gula Pasir 1kg",
		UnitPrice: decimal.NewFromInt(15000),
		UnitCost:  decimal.NewFromInt(12000),
		Stock:     10,
		IsActive:  true,
	}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Name: "Dewi"}, nil).Maybe()
}

func (suite *PurchaseServiceTestSuite) TestPostPurchase_StockInCashOut() {
	ctx := context.Background()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Product{suite.product.ProductID: suite.product}, nil).Once()

	req := dto.CreatePurchaseRequest{
		Items:         []dto.PurchaseItemRequest{{ProductID: suite.product.ProductID, Quantity: 10, UnitCost: decimal.NewFromInt(12000)}},
		AmountPaid:    decimal.NewFromInt(120000),
		PaymentMethod: domain.MethodCash,
		SupplierName:  "PT Manis Jaya",
	}

	var capturedDeltas map[string]int64
	var capturedCash *domain.CashEntry
	suite.mockPurchaseRepo.On("CreatePurchase", ctx, mock.AnythingOfType("domain.PurchaseRecord"), mock.AnythingOfType("map[string]int64"), mock.AnythingOfType("*domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedDeltas = args.Get(2).(map[string]int64)
			capturedCash, _ = args.Get(3).(*domain.CashEntry)
		}).Return(nil).Once()

	purchase, err := suite.service.PostPurchase(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(purchase.TotalAmount.Equal(decimal.NewFromInt(120000)))
	suite.Equal(domain.StatusPaid, purchase.PaymentStatus)

	// Bought stock comes in; the money goes out.
	suite.Equal(int64(10), capturedDeltas[suite.product.ProductID])
	suite.Require().NotNil(capturedCash)
	suite.Equal(domain.CashOut, capturedCash.Direction)
	suite.True(capturedCash.Amount.Equal(decimal.NewFromInt(120000)))
	suite.Equal(domain.CategoryPurchase, capturedCash.Category)
	suite.Equal("Pembelian Stok - PT Manis Jaya", capturedCash.Description)

	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestPostPurchase_PaidAboveTotalRejected() {
	ctx := context.Background()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Product{}, nil).Once()

	req := dto.CreatePurchaseRequest{
		Items:         []dto.PurchaseItemRequest{{ProductID: suite.product.ProductID, Quantity: 1, UnitCost: decimal.NewFromInt(12000)}},
		AmountPaid:    decimal.NewFromInt(20000),
		PaymentMethod: domain.MethodCash,
		SupplierName:  "PT Manis Jaya",
	}

	_, err := suite.service.PostPurchase(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaidExceeds)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "CreatePurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A purchase return refunds money from the supplier: the payable is cut first,
// the remainder comes back into the till.
func (suite *PurchaseServiceTestSuite) TestPostReturn_PayableCutBeforeCash() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.PurchaseRecord{
		PurchaseID: originalID,
		Kind:       domain.KindPurchase,
		Items: []domain.LineItem{{
			ProductID:   suite.product.ProductID,
			ProductName: suite.product.Name,
			Quantity:    10,
			UnitPrice:   decimal.NewFromInt(12000),
			UnitCost:    decimal.NewFromInt(12000),
		}},
		TotalAmount:   decimal.NewFromInt(120000),
		AmountPaid:    decimal.NewFromInt(100000),
		PaymentStatus: domain.StatusPartial,
		PaymentMethod: domain.MethodCash,
		SupplierName:  "PT Manis Jaya",
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, originalID).Return(original, nil).Once()
	suite.mockPurchaseRepo.On("SumReturnedQuantities", ctx, originalID).Return(map[string]int64{}, nil).Once()

	var capturedRet domain.PurchaseRecord
	var capturedDebtCut *domain.PaymentEntry
	var capturedDeltas map[string]int64
	var capturedCash *domain.CashEntry
	suite.mockPurchaseRepo.On("CreatePurchaseReturn", ctx, mock.AnythingOfType("domain.PurchaseRecord"), mock.AnythingOfType("*domain.PaymentEntry"), mock.AnythingOfType("map[string]int64"), mock.AnythingOfType("*domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedRet = args.Get(1).(domain.PurchaseRecord)
			capturedDebtCut, _ = args.Get(2).(*domain.PaymentEntry)
			capturedDeltas = args.Get(3).(map[string]int64)
			capturedCash, _ = args.Get(4).(*domain.CashEntry)
		}).Return(nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 3}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, originalID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindReturn, capturedRet.Kind)
	suite.True(capturedRet.TotalAmount.Equal(decimal.NewFromInt(-36000)))

	// Refund 36000 against payable 20000: cut 20000, receive 16000 back.
	suite.Require().NotNil(capturedDebtCut)
	suite.True(capturedDebtCut.Amount.Equal(decimal.NewFromInt(20000)))
	suite.Require().NotNil(capturedCash)
	suite.Equal(domain.CashIn, capturedCash.Direction)
	suite.True(capturedCash.Amount.Equal(decimal.NewFromInt(16000)))
	suite.Equal(domain.CategoryPurchaseReturn, capturedCash.Category)

	// Returned units leave the shelf.
	suite.Equal(int64(-3), capturedDeltas[suite.product.ProductID])

	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestPostReturn_ReturnOfReturnRejected() {
	ctx := context.Background()
	returnID := uuid.NewString()
	parentID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, returnID).Return(&domain.PurchaseRecord{
		PurchaseID:         returnID,
		Kind:               domain.KindReturn,
		OriginalPurchaseID: &parentID,
	}, nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 1}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, returnID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrReturnOfReturn)
}

func (suite *PurchaseServiceTestSuite) TestPostRepayment_Success() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	purchase := &domain.PurchaseRecord{
		PurchaseID:    purchaseID,
		Kind:          domain.KindPurchase,
		TotalAmount:   decimal.NewFromInt(120000),
		AmountPaid:    decimal.NewFromInt(100000),
		PaymentStatus: domain.StatusPartial,
		SupplierName:  "PT Manis Jaya",
	}
	updated := &domain.PurchaseRecord{
		PurchaseID:    purchaseID,
		Kind:          domain.KindPurchase,
		TotalAmount:   decimal.NewFromInt(120000),
		AmountPaid:    decimal.NewFromInt(120000),
		PaymentStatus: domain.StatusPaid,
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(purchase, nil).Once()

	var capturedCash domain.CashEntry
	suite.mockPurchaseRepo.On("AddPurchaseRepayment", ctx, purchaseID, mock.AnythingOfType("domain.PaymentEntry"), mock.AnythingOfType("domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedCash = args.Get(3).(domain.CashEntry)
		}).Return(updated, nil).Once()

	req := dto.CreateRepaymentRequest{
		Amount:        decimal.NewFromInt(20000),
		PaymentMethod: domain.MethodCash,
	}
	result, err := suite.service.PostRepayment(ctx, purchaseID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, result.PaymentStatus)
	suite.Equal(domain.CashOut, capturedCash.Direction)
	suite.Equal(domain.CategoryPayableSettlement, capturedCash.Category)
	suite.Equal("Pelunasan Utang Supplier - PT Manis Jaya", capturedCash.Description)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestPostRepayment_OverpaymentRejected() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(&domain.PurchaseRecord{
		PurchaseID:    purchaseID,
		Kind:          domain.KindPurchase,
		TotalAmount:   decimal.NewFromInt(120000),
		AmountPaid:    decimal.NewFromInt(110000),
		PaymentStatus: domain.StatusPartial,
	}, nil).Once()

	req := dto.CreateRepaymentRequest{
		Amount:        decimal.NewFromInt(15000),
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostRepayment(ctx, purchaseID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrOverRepayment)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_DelegatesToCascade() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	suite.mockPurchaseRepo.On("DeletePurchaseCascade", ctx, purchaseID).Return(nil).Once()

	err := suite.service.DeletePurchase(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListReturns_IncludesChildRecords() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	original := &domain.PurchaseRecord{PurchaseID: purchaseID, Kind: domain.KindPurchase, IsReturned: true}
	children := []domain.PurchaseRecord{
		{
			PurchaseID:         uuid.NewString(),
			Kind:               domain.KindReturn,
			OriginalPurchaseID: &purchaseID,
			TotalAmount:        decimal.NewFromInt(-36000),
			Items:              []domain.LineItem{{ProductID: suite.product.ProductID, Quantity: 3}},
		},
	}
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(original, nil).Once()
	suite.mockPurchaseRepo.On("FindReturnsByOriginalPurchaseID", ctx, purchaseID).Return(children, nil).Once()

	returns, err := suite.service.ListReturns(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.Require().Len(returns, 1)
	suite.Equal(domain.KindReturn, returns[0].Kind)
	suite.Equal(purchaseID, *returns[0].OriginalPurchaseID)
	suite.True(returns[0].TotalAmount.Equal(decimal.NewFromInt(-36000)))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListReturns_UnknownPurchaseRejected() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListReturns(ctx, purchaseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "FindReturnsByOriginalPurchaseID", mock.Anything, mock.Anything)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
