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

type CashbookServiceTestSuite struct {
	suite.Suite
	mockCashbookRepo *MockCashbookRepository
	mockBankRepo     *MockBankRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.CashbookSvcFacade

	userID string
}

func (suite *CashbookServiceTestSuite) SetupTest() {
	suite.mockCashbookRepo = new(MockCashbookRepository)
	suite.mockBankRepo = new(MockBankRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewCashbookService(suite.mockCashbookRepo, suite.mockBankRepo, suite.mockUserRepo)

	suite.userID = uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Name: "Sari"}, nil).Maybe()
}

func (suite *CashbookServiceTestSuite) TestCreateManualEntry_Success() {
	ctx := context.Background()

	var captured domain.CashEntry
	suite.mockCashbookRepo.On("CreateEntry", ctx, mock.AnythingOfType("domain.CashEntry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.CashEntry)
		}).Return(nil).Once()

	req := dto.CreateCashEntryRequest{
		Direction:     domain.CashOut,
		Amount:        decimal.NewFromInt(50000),
		Category:      "Listrik",
		Description:   "Token listrik toko",
		PaymentMethod: domain.MethodCash,
	}
	entry, err := suite.service.CreateManualEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.False(captured.IsSystemGenerated())
	suite.Equal("Sari", captured.UserName)
	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestCreateManualEntry_SystemCategoryRejected() {
	ctx := context.Background()

	req := dto.CreateCashEntryRequest{
		Direction:     domain.CashIn,
		Amount:        decimal.NewFromInt(10000),
		Category:      domain.CategorySale,
		PaymentMethod: domain.MethodCash,
	}
	_, err := suite.service.CreateManualEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSystemCategory)
	suite.mockCashbookRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestCreateManualEntry_TransferWithoutBankRejected() {
	ctx := context.Background()

	req := dto.CreateCashEntryRequest{
		Direction:     domain.CashIn,
		Amount:        decimal.NewFromInt(10000),
		Category:      "Modal",
		PaymentMethod: domain.MethodTransfer,
	}
	_, err := suite.service.CreateManualEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBankRequired)
}

func (suite *CashbookServiceTestSuite) TestDeleteManualEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockCashbookRepo.On("FindEntryByID", ctx, entryID).Return(&domain.CashEntry{
		EntryID:  entryID,
		Category: "Listrik",
	}, nil).Once()
	suite.mockCashbookRepo.On("DeleteEntry", ctx, entryID).Return(nil).Once()

	err := suite.service.DeleteManualEntry(ctx, entryID)

	suite.Require().NoError(err)
	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestDeleteManualEntry_SystemEntryRejected() {
	ctx := context.Background()
	entryID := uuid.NewString()
	refID := uuid.NewString()

	suite.mockCashbookRepo.On("FindEntryByID", ctx, entryID).Return(&domain.CashEntry{
		EntryID:     entryID,
		Category:    domain.CategorySale,
		ReferenceID: &refID,
	}, nil).Once()

	err := suite.service.DeleteManualEntry(ctx, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSystemEntry)
	suite.mockCashbookRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestListEntries_InvalidDirectionRejected() {
	ctx := context.Background()
	bad := "SIDEWAYS"

	_, err := suite.service.ListEntries(ctx, dto.ListCashEntriesParams{Direction: &bad})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashbookServiceTestSuite) TestListEntries_DirectionFilterPassedThrough() {
	ctx := context.Background()
	in := string(domain.CashIn)

	suite.mockCashbookRepo.On("ListEntries", ctx, 20, (*string)(nil), mock.MatchedBy(func(d *domain.CashDirection) bool {
		return d != nil && *d == domain.CashIn
	})).Return([]domain.CashEntry{}, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListCashEntriesParams{Direction: &in})

	suite.Require().NoError(err)
	suite.Empty(resp.Entries)
	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func TestCashbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashbookServiceTestSuite))
}
