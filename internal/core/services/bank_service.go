package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// bankService manages the display-only bank account directory used for
// transfer payments.
type bankService struct {
	bankRepo portsrepo.BankRepositoryFacade
}

// NewBankService creates a new bank service.
func NewBankService(bankRepo portsrepo.BankRepositoryFacade) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

// CreateBank adds a bank account to the directory.
func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	bank := domain.BankAccount{
		BankID:        uuid.NewString(),
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		logger.Error("Failed to save bank", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save bank: %w", err)
	}

	logger.Info("Bank created", slog.String("bank_id", bank.BankID), slog.String("name", bank.Name))
	return &bank, nil
}

// GetBankByID retrieves a bank account by id.
func (s *bankService) GetBankByID(ctx context.Context, bankID string) (*domain.BankAccount, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bank %s: %w", bankID, err)
	}
	return bank, nil
}

// ListBanks retrieves all bank accounts.
func (s *bankService) ListBanks(ctx context.Context) ([]domain.BankAccount, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}
