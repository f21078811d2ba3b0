package services

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
)

// BankSvcFacade manages the display-only bank account directory.
type BankSvcFacade interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.BankAccount, error)
	GetBankByID(ctx context.Context, bankID string) (*domain.BankAccount, error)
	ListBanks(ctx context.Context) ([]domain.BankAccount, error)
}
