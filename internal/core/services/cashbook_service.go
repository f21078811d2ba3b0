package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

var (
	ErrSystemCategory = fmt.Errorf("%w: category is reserved for system-generated entries", apperrors.ErrValidation)
	ErrSystemEntry    = fmt.Errorf("%w: system-generated entries can only be removed by deleting the referenced record", apperrors.ErrForbidden)
)

// cashbookService manages free-standing manual entries in the cash ledger.
type cashbookService struct {
	cashbookRepo portsrepo.CashbookRepositoryFacade
	bankRepo     portsrepo.BankRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewCashbookService creates a new cashbook service.
func NewCashbookService(cashbookRepo portsrepo.CashbookRepositoryFacade, bankRepo portsrepo.BankRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CashbookSvcFacade {
	return &cashbookService{
		cashbookRepo: cashbookRepo,
		bankRepo:     bankRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

// CreateManualEntry records a manual cash movement. The system categories are
// off limits: they would masquerade as poster output in the reports.
func (s *cashbookService) CreateManualEntry(ctx context.Context, req dto.CreateCashEntryRequest, userID string) (*domain.CashEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if domain.IsSystemCategory(req.Category) {
		return nil, ErrSystemCategory
	}
	if req.PaymentMethod == domain.MethodTransfer {
		if req.BankID == nil || *req.BankID == "" {
			return nil, ErrBankRequired
		}
		if _, err := s.bankRepo.FindBankByID(ctx, *req.BankID); err != nil {
			return nil, fmt.Errorf("%w: bank %s not found", apperrors.ErrValidation, *req.BankID)
		}
	}

	now := time.Now().UTC()
	entryDate := now
	if req.Date != nil {
		entryDate = req.Date.UTC()
	}

	userName := ""
	if user, err := s.userRepo.FindUserByID(ctx, userID); err == nil {
		userName = user.Name
	}

	entry := domain.CashEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   entryDate,
		Direction:   req.Direction,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Method:      req.PaymentMethod,
		BankID:      req.BankID,
		UserID:      userID,
		UserName:    userName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cashbookRepo.CreateEntry(ctx, entry); err != nil {
		logger.Error("Failed to create cash entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create cash entry: %w", err)
	}

	logger.Info("Manual cash entry created", slog.String("entry_id", entry.EntryID), slog.String("category", entry.Category))
	return &entry, nil
}

// DeleteManualEntry removes a manual entry by id.
func (s *cashbookService) DeleteManualEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.cashbookRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find cash entry %s: %w", entryID, err)
	}
	if entry.IsSystemGenerated() {
		return ErrSystemEntry
	}

	if err := s.cashbookRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete cash entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete cash entry %s: %w", entryID, err)
	}

	logger.Info("Manual cash entry deleted", slog.String("entry_id", entryID))
	return nil
}

// GetEntryByID retrieves a single cash ledger row.
func (s *cashbookService) GetEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error) {
	entry, err := s.cashbookRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cash entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves a page of the cash ledger, optionally filtered by direction.
func (s *cashbookService) ListEntries(ctx context.Context, params dto.ListCashEntriesParams) (*dto.ListCashEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var direction *domain.CashDirection
	if params.Direction != nil && *params.Direction != "" {
		d := domain.CashDirection(*params.Direction)
		if d != domain.CashIn && d != domain.CashOut {
			return nil, fmt.Errorf("%w: direction must be IN or OUT", apperrors.ErrValidation)
		}
		direction = &d
	}

	entries, nextToken, err := s.cashbookRepo.ListEntries(ctx, limit, params.NextToken, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash entries: %w", err)
	}

	responses := make([]dto.CashEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToCashEntryResponse(&entries[i])
	}
	return &dto.ListCashEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}
