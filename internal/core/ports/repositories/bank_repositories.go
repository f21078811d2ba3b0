package repositories

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// BankRepositoryFacade defines persistence operations for the bank directory.
type BankRepositoryFacade interface {
	FindBankByID(ctx context.Context, bankID string) (*domain.BankAccount, error)
	ListBanks(ctx context.Context) ([]domain.BankAccount, error)
	SaveBank(ctx context.Context, bank domain.BankAccount) error
}
