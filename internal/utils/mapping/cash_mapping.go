package mapping

import (
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/models"
)

// ToModelCashEntry converts a domain CashEntry to its row model.
func ToModelCashEntry(d domain.CashEntry) models.CashEntry {
	return models.CashEntry{
		EntryID:       d.EntryID,
		EntryDate:     d.EntryDate,
		Direction:     string(d.Direction),
		Amount:        d.Amount,
		Category:      d.Category,
		Description:   d.Description,
		PaymentMethod: string(d.Method),
		BankID:        d.BankID,
		ReferenceID:   d.ReferenceID,
		UserID:        d.UserID,
		UserName:      d.UserName,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashEntry converts a row model to a domain CashEntry.
func ToDomainCashEntry(m models.CashEntry) domain.CashEntry {
	return domain.CashEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Direction:   domain.CashDirection(m.Direction),
		Amount:      m.Amount,
		Category:    m.Category,
		Description: m.Description,
		Method:      domain.PaymentMethod(m.PaymentMethod),
		BankID:      m.BankID,
		ReferenceID: m.ReferenceID,
		UserID:      m.UserID,
		UserName:    m.UserName,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
