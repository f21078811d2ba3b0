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

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductRepository
	mockBankRepo    *MockBankRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.SaleSvcFacade

	cashierID string
	product   domain.Product
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockBankRepo = new(MockBankRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockProductRepo, suite.mockBankRepo, suite.mockUserRepo)

	suite.cashierID = uuid.NewString()
	suite.product = domain.Product{
		ProductID: uuid.NewString(),
		SKU:       "KOPI-01",
		Name:      "Kopi Bubuk 200g",
		UnitPrice: decimal.NewFromInt(10000),
		UnitCost:  decimal.NewFromInt(7000),
		Stock:     50,
		IsActive:  true,
	}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.cashierID).
		Return(&domain.User{UserID: suite.cashierID, Name: "Sari"}, nil).Maybe()
}

func (suite *SaleServiceTestSuite) catalogReturns(products ...domain.Product) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(byID, nil).Once()
}

func (suite *SaleServiceTestSuite) TestPostSale_CashEntryIsNetOfChange() {
	ctx := context.Background()
	suite.catalogReturns(suite.product)

	req := dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: suite.product.ProductID, Quantity: 2}},
		AmountPaid:    decimal.NewFromInt(25000),
		Change:        decimal.NewFromInt(5000),
		PaymentMethod: domain.MethodCash,
		CustomerName:  "Budi",
	}

	var capturedSale domain.SaleRecord
	var capturedDeltas map[string]int64
	var capturedCash *domain.CashEntry
	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.SaleRecord"), mock.AnythingOfType("map[string]int64"), mock.AnythingOfType("*domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedSale = args.Get(1).(domain.SaleRecord)
			capturedDeltas = args.Get(2).(map[string]int64)
			capturedCash = args.Get(3).(*domain.CashEntry)
		}).Return(nil).Once()

	sale, err := suite.service.PostSale(ctx, req, suite.cashierID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.True(sale.TotalAmount.Equal(decimal.NewFromInt(20000)))
	suite.Equal(domain.StatusPaid, sale.PaymentStatus)

	// Catalog price fills in because the request line carried none.
	suite.True(capturedSale.Items[0].UnitPrice.Equal(suite.product.UnitPrice))
	suite.Equal(int64(-2), capturedDeltas[suite.product.ProductID])

	// The till only received 25000 - 5000.
	suite.Require().NotNil(capturedCash)
	suite.Equal(domain.CashIn, capturedCash.Direction)
	suite.True(capturedCash.Amount.Equal(decimal.NewFromInt(20000)))
	suite.Equal(domain.CategorySale, capturedCash.Category)
	suite.Equal("Penjualan - Budi", capturedCash.Description)
	suite.Equal("Sari", capturedCash.UserName)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostSale_SkipCashFlowSuppressesEntry() {
	ctx := context.Background()
	suite.catalogReturns(suite.product)

	req := dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: suite.product.ProductID, Quantity: 1}},
		AmountPaid:    decimal.NewFromInt(10000),
		PaymentMethod: domain.MethodCash,
		SkipCashFlow:  true,
	}

	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.SaleRecord"), mock.AnythingOfType("map[string]int64"), (*domain.CashEntry)(nil)).Return(nil).Once()

	_, err := suite.service.PostSale(ctx, req, suite.cashierID)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostSale_UnpaidSaleHasNoCashEntry() {
	ctx := context.Background()
	suite.catalogReturns(suite.product)

	req := dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: suite.product.ProductID, Quantity: 3}},
		AmountPaid:    decimal.Zero,
		PaymentMethod: domain.MethodCash,
	}

	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.SaleRecord"), mock.AnythingOfType("map[string]int64"), (*domain.CashEntry)(nil)).Return(nil).Once()

	sale, err := suite.service.PostSale(ctx, req, suite.cashierID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusUnpaid, sale.PaymentStatus)
	suite.True(sale.Outstanding().Equal(decimal.NewFromInt(30000)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostSale_TransferWithoutBankRejected() {
	ctx := context.Background()

	req := dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: suite.product.ProductID, Quantity: 1}},
		AmountPaid:    decimal.NewFromInt(10000),
		PaymentMethod: domain.MethodTransfer,
	}

	_, err := suite.service.PostSale(ctx, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBankRequired)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestPostSale_ChangeExceedingPaidRejected() {
	ctx := context.Background()

	req := dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: suite.product.ProductID, Quantity: 1}},
		AmountPaid:    decimal.NewFromInt(5000),
		Change:        decimal.NewFromInt(6000),
		PaymentMethod: domain.MethodCash,
	}

	_, err := suite.service.PostSale(ctx, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrChangeExceeds)
}

// A return whose refund exactly matches the outstanding debt should cut the
// debt in full and move no cash at all.
func (suite *SaleServiceTestSuite) TestPostReturn_RefundFullyAbsorbedByDebt() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.SaleRecord{
		SaleID: originalID,
		Kind:   domain.KindSale,
		Items: []domain.LineItem{{
			ProductID:   suite.product.ProductID,
			ProductName: suite.product.Name,
			Quantity:    5,
			UnitPrice:   decimal.NewFromInt(10000),
		}},
		TotalAmount:   decimal.NewFromInt(50000),
		AmountPaid:    decimal.NewFromInt(20000),
		PaymentStatus: domain.StatusPartial,
		PaymentMethod: domain.MethodCash,
		CustomerName:  "Budi",
		CashierID:     suite.cashierID,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, originalID).Return(original, nil).Once()
	suite.mockSaleRepo.On("SumReturnedQuantities", ctx, originalID).Return(map[string]int64{}, nil).Once()

	var capturedRet domain.SaleRecord
	var capturedDebtCut *domain.PaymentEntry
	var capturedCash *domain.CashEntry
	suite.mockSaleRepo.On("CreateSaleReturn", ctx, mock.AnythingOfType("domain.SaleRecord"), mock.AnythingOfType("*domain.PaymentEntry"), mock.AnythingOfType("map[string]int64"), mock.Anything).
		Run(func(args mock.Arguments) {
			capturedRet = args.Get(1).(domain.SaleRecord)
			capturedDebtCut, _ = args.Get(2).(*domain.PaymentEntry)
			capturedCash, _ = args.Get(4).(*domain.CashEntry)
		}).Return(nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 3}},
		PaymentMethod: domain.MethodCash,
	}
	ret, err := suite.service.PostReturn(ctx, originalID, req, suite.cashierID)

	suite.Require().NoError(err)
	suite.Require().NotNil(ret)
	suite.Equal(domain.KindReturn, ret.Kind)
	suite.True(ret.TotalAmount.Equal(decimal.NewFromInt(-30000)))
	suite.True(ret.AmountPaid.Equal(decimal.NewFromInt(-30000)))
	suite.Equal(domain.StatusPaid, ret.PaymentStatus)

	// Outstanding was 30000 and the refund was 30000: all debt, no cash.
	suite.Require().NotNil(capturedDebtCut)
	suite.True(capturedDebtCut.Amount.Equal(decimal.NewFromInt(30000)))
	suite.Require().NotNil(capturedRet.DebtCutPaymentID)
	suite.Equal(capturedDebtCut.PaymentID, *capturedRet.DebtCutPaymentID)
	suite.Nil(capturedCash)

	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// A refund larger than the outstanding debt cuts the debt first and pays only
// the remainder out of the till.
func (suite *SaleServiceTestSuite) TestPostReturn_RefundSplitsIntoDebtCutAndCash() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.SaleRecord{
		SaleID: originalID,
		Kind:   domain.KindSale,
		Items: []domain.LineItem{{
			ProductID:   suite.product.ProductID,
			ProductName: suite.product.Name,
			Quantity:    5,
			UnitPrice:   decimal.NewFromInt(15000),
		}},
		TotalAmount:   decimal.NewFromInt(75000),
		AmountPaid:    decimal.NewFromInt(45000),
		PaymentStatus: domain.StatusPartial,
		PaymentMethod: domain.MethodCash,
		CashierID:     suite.cashierID,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, originalID).Return(original, nil).Once()
	suite.mockSaleRepo.On("SumReturnedQuantities", ctx, originalID).Return(map[string]int64{}, nil).Once()

	var capturedDebtCut *domain.PaymentEntry
	var capturedDeltas map[string]int64
	var capturedCash *domain.CashEntry
	suite.mockSaleRepo.On("CreateSaleReturn", ctx, mock.AnythingOfType("domain.SaleRecord"), mock.AnythingOfType("*domain.PaymentEntry"), mock.AnythingOfType("map[string]int64"), mock.AnythingOfType("*domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedDebtCut, _ = args.Get(2).(*domain.PaymentEntry)
			capturedDeltas = args.Get(3).(map[string]int64)
			capturedCash, _ = args.Get(4).(*domain.CashEntry)
		}).Return(nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 3}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, originalID, req, suite.cashierID)

	suite.Require().NoError(err)

	// Refund 45000 against outstanding 30000: cut 30000, hand back 15000.
	suite.Require().NotNil(capturedDebtCut)
	suite.True(capturedDebtCut.Amount.Equal(decimal.NewFromInt(30000)))
	suite.Require().NotNil(capturedCash)
	suite.Equal(domain.CashOut, capturedCash.Direction)
	suite.True(capturedCash.Amount.Equal(decimal.NewFromInt(15000)))
	suite.Equal(domain.CategorySaleReturn, capturedCash.Category)

	// Returned units go back on the shelf.
	suite.Equal(int64(3), capturedDeltas[suite.product.ProductID])

	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostReturn_FullyPaidSaleRefundsAllCash() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.SaleRecord{
		SaleID: originalID,
		Kind:   domain.KindSale,
		Items: []domain.LineItem{{
			ProductID:   suite.product.ProductID,
			ProductName: suite.product.Name,
			Quantity:    2,
			UnitPrice:   decimal.NewFromInt(10000),
		}},
		TotalAmount:   decimal.NewFromInt(20000),
		AmountPaid:    decimal.NewFromInt(20000),
		PaymentStatus: domain.StatusPaid,
		PaymentMethod: domain.MethodCash,
		CashierID:     suite.cashierID,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, originalID).Return(original, nil).Once()
	suite.mockSaleRepo.On("SumReturnedQuantities", ctx, originalID).Return(map[string]int64{}, nil).Once()

	var capturedDebtCut *domain.PaymentEntry
	var capturedCash *domain.CashEntry
	suite.mockSaleRepo.On("CreateSaleReturn", ctx, mock.AnythingOfType("domain.SaleRecord"), mock.Anything, mock.AnythingOfType("map[string]int64"), mock.AnythingOfType("*domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedDebtCut, _ = args.Get(2).(*domain.PaymentEntry)
			capturedCash, _ = args.Get(4).(*domain.CashEntry)
		}).Return(nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 1}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, originalID, req, suite.cashierID)

	suite.Require().NoError(err)
	suite.Nil(capturedDebtCut)
	suite.Require().NotNil(capturedCash)
	suite.True(capturedCash.Amount.Equal(decimal.NewFromInt(10000)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostReturn_ReturnOfReturnRejected() {
	ctx := context.Background()
	returnID := uuid.NewString()
	parentID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, returnID).Return(&domain.SaleRecord{
		SaleID:         returnID,
		Kind:           domain.KindReturn,
		OriginalSaleID: &parentID,
	}, nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 1}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, returnID, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrReturnOfReturn)
}

func (suite *SaleServiceTestSuite) TestPostReturn_QuantityAboveRemainingRejected() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.SaleRecord{
		SaleID: originalID,
		Kind:   domain.KindSale,
		Items: []domain.LineItem{{
			ProductID: suite.product.ProductID,
			Quantity:  5,
			UnitPrice: decimal.NewFromInt(10000),
		}},
		TotalAmount:   decimal.NewFromInt(50000),
		AmountPaid:    decimal.NewFromInt(50000),
		PaymentStatus: domain.StatusPaid,
		PaymentMethod: domain.MethodCash,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, originalID).Return(original, nil).Once()
	// 3 of 5 already went back; only 2 remain returnable.
	suite.mockSaleRepo.On("SumReturnedQuantities", ctx, originalID).Return(map[string]int64{suite.product.ProductID: 3}, nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: suite.product.ProductID, Quantity: 3}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, originalID, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrExcessReturnQty)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleReturn", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestPostReturn_ProductNotOnRecordRejected() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.SaleRecord{
		SaleID: originalID,
		Kind:   domain.KindSale,
		Items: []domain.LineItem{{
			ProductID: suite.product.ProductID,
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(10000),
		}},
		TotalAmount: decimal.NewFromInt(10000),
		AmountPaid:  decimal.NewFromInt(10000),
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, originalID).Return(original, nil).Once()
	suite.mockSaleRepo.On("SumReturnedQuantities", ctx, originalID).Return(map[string]int64{}, nil).Once()

	req := dto.CreateReturnRequest{
		Items:         []dto.ReturnItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostReturn(ctx, originalID, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrLineNotOnRecord)
}

func (suite *SaleServiceTestSuite) TestPostRepayment_Success() {
	ctx := context.Background()
	saleID := uuid.NewString()
	sale := &domain.SaleRecord{
		SaleID:        saleID,
		Kind:          domain.KindSale,
		TotalAmount:   decimal.NewFromInt(50000),
		AmountPaid:    decimal.NewFromInt(20000),
		PaymentStatus: domain.StatusPartial,
		CustomerName:  "Budi",
	}
	updated := &domain.SaleRecord{
		SaleID:        saleID,
		Kind:          domain.KindSale,
		TotalAmount:   decimal.NewFromInt(50000),
		AmountPaid:    decimal.NewFromInt(50000),
		PaymentStatus: domain.StatusPaid,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(sale, nil).Once()

	var capturedPayment domain.PaymentEntry
	var capturedCash domain.CashEntry
	suite.mockSaleRepo.On("AddSaleRepayment", ctx, saleID, mock.AnythingOfType("domain.PaymentEntry"), mock.AnythingOfType("domain.CashEntry")).
		Run(func(args mock.Arguments) {
			capturedPayment = args.Get(2).(domain.PaymentEntry)
			capturedCash = args.Get(3).(domain.CashEntry)
		}).Return(updated, nil).Once()

	req := dto.CreateRepaymentRequest{
		Amount:        decimal.NewFromInt(30000),
		PaymentMethod: domain.MethodCash,
	}
	result, err := suite.service.PostRepayment(ctx, saleID, req, suite.cashierID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, result.PaymentStatus)
	suite.True(capturedPayment.Amount.Equal(decimal.NewFromInt(30000)))
	suite.NotEmpty(capturedPayment.PaymentID)
	suite.Equal(domain.CashIn, capturedCash.Direction)
	suite.Equal(domain.CategoryReceivableSettlement, capturedCash.Category)
	suite.Equal("Pelunasan Piutang - Budi", capturedCash.Description)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostRepayment_OverpaymentRejected() {
	ctx := context.Background()
	saleID := uuid.NewString()
	sale := &domain.SaleRecord{
		SaleID:        saleID,
		Kind:          domain.KindSale,
		TotalAmount:   decimal.NewFromInt(50000),
		AmountPaid:    decimal.NewFromInt(40000),
		PaymentStatus: domain.StatusPartial,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(sale, nil).Once()

	req := dto.CreateRepaymentRequest{
		Amount:        decimal.NewFromInt(15000),
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostRepayment(ctx, saleID, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrOverRepayment)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "AddSaleRepayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestPostRepayment_AgainstReturnRejected() {
	ctx := context.Background()
	returnID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, returnID).Return(&domain.SaleRecord{
		SaleID: returnID,
		Kind:   domain.KindReturn,
	}, nil).Once()

	req := dto.CreateRepaymentRequest{
		Amount:        decimal.NewFromInt(1000),
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.PostRepayment(ctx, returnID, req, suite.cashierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRepayReturn)
}

func (suite *SaleServiceTestSuite) TestDeleteSale_DelegatesToCascade() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockSaleRepo.On("DeleteSaleCascade", ctx, saleID).Return(nil).Once()

	err := suite.service.DeleteSale(ctx, saleID)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestListReturns_IncludesChildRecords() {
	ctx := context.Background()
	saleID := uuid.NewString()

	original := &domain.SaleRecord{SaleID: saleID, Kind: domain.KindSale, IsReturned: true}
	children := []domain.SaleRecord{
		{
			SaleID:         uuid.NewString(),
			Kind:           domain.KindReturn,
			OriginalSaleID: &saleID,
			TotalAmount:    decimal.NewFromInt(-30000),
			Items:          []domain.LineItem{{ProductID: suite.product.ProductID, Quantity: 3}},
		},
	}
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(original, nil).Once()
	suite.mockSaleRepo.On("FindReturnsByOriginalSaleID", ctx, saleID).Return(children, nil).Once()

	returns, err := suite.service.ListReturns(ctx, saleID)

	suite.Require().NoError(err)
	suite.Require().Len(returns, 1)
	suite.Equal(domain.KindReturn, returns[0].Kind)
	suite.Equal(saleID, *returns[0].OriginalSaleID)
	suite.True(returns[0].TotalAmount.Equal(decimal.NewFromInt(-30000)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestListReturns_UnknownSaleRejected() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListReturns(ctx, saleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindReturnsByOriginalSaleID", mock.Anything, mock.Anything)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
