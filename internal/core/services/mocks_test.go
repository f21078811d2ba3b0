package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryWithTx = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) FindReturnsByOriginalSaleID(ctx context.Context, saleID string) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) SumReturnedQuantities(ctx context.Context, originalSaleID string) (map[string]int64, error) {
	args := m.Called(ctx, originalSaleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.SaleRecord, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.SaleRecord), returnedNextToken, args.Error(2)
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale domain.SaleRecord, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	args := m.Called(ctx, sale, stockDeltas, cashEntry)
	return args.Error(0)
}

func (m *MockSaleRepository) CreateSaleReturn(ctx context.Context, ret domain.SaleRecord, debtCut *domain.PaymentEntry, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	args := m.Called(ctx, ret, debtCut, stockDeltas, cashEntry)
	return args.Error(0)
}

func (m *MockSaleRepository) AddSaleRepayment(ctx context.Context, saleID string, payment domain.PaymentEntry, cashEntry domain.CashEntry) (*domain.SaleRecord, error) {
	args := m.Called(ctx, saleID, payment, cashEntry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) DeleteSaleCascade(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

func (m *MockSaleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSaleRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryWithTx = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) FindReturnsByOriginalPurchaseID(ctx context.Context, purchaseID string) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) SumReturnedQuantities(ctx context.Context, originalPurchaseID string) (map[string]int64, error) {
	args := m.Called(ctx, originalPurchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseRecord, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.PurchaseRecord), returnedNextToken, args.Error(2)
}

func (m *MockPurchaseRepository) CreatePurchase(ctx context.Context, purchase domain.PurchaseRecord, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	args := m.Called(ctx, purchase, stockDeltas, cashEntry)
	return args.Error(0)
}

func (m *MockPurchaseRepository) CreatePurchaseReturn(ctx context.Context, ret domain.PurchaseRecord, debtCut *domain.PaymentEntry, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	args := m.Called(ctx, ret, debtCut, stockDeltas, cashEntry)
	return args.Error(0)
}

func (m *MockPurchaseRepository) AddPurchaseRepayment(ctx context.Context, purchaseID string, payment domain.PaymentEntry, cashEntry domain.CashEntry) (*domain.PurchaseRecord, error) {
	args := m.Called(ctx, purchaseID, payment, cashEntry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) DeletePurchaseCascade(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPurchaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Mock BankRepository ---
type MockBankRepository struct {
	mock.Mock
}

var _ portsrepo.BankRepositoryFacade = (*MockBankRepository)(nil)

func (m *MockBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankRepository) ListBanks(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.BankAccount) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock CashbookRepository ---
type MockCashbookRepository struct {
	mock.Mock
}

var _ portsrepo.CashbookRepositoryFacade = (*MockCashbookRepository)(nil)

func (m *MockCashbookRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashEntry), args.Error(1)
}

func (m *MockCashbookRepository) ListEntries(ctx context.Context, limit int, nextToken *string, direction *domain.CashDirection) ([]domain.CashEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken, direction)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.CashEntry), returnedNextToken, args.Error(2)
}

func (m *MockCashbookRepository) SummarizeByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockCashbookRepository) CreateEntry(ctx context.Context, entry domain.CashEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCashbookRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}
