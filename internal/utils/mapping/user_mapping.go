package mapping

import (
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/models"
)

// ToModelUser converts a domain User to its row model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a row model to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBank converts a row model to a domain BankAccount.
func ToDomainBank(m models.Bank) domain.BankAccount {
	return domain.BankAccount{
		BankID:        m.BankID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		AccountHolder: m.AccountHolder,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBank converts a domain BankAccount to its row model.
func ToModelBank(d domain.BankAccount) models.Bank {
	return models.Bank{
		BankID:        d.BankID,
		Name:          d.Name,
		AccountNumber: d.AccountNumber,
		AccountHolder: d.AccountHolder,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}
