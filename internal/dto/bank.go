package dto

import "github.com/tokosakti/pos_ledger_app/internal/core/domain"

// CreateBankRequest adds a bank account to the directory.
type CreateBankRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	AccountHolder string `json:"accountHolder" binding:"required"`
}

// BankResponse is the API representation of a bank account.
type BankResponse struct {
	BankID        string `json:"bankID"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// ToBankResponse converts a domain bank account to its API representation.
func ToBankResponse(b *domain.BankAccount) BankResponse {
	return BankResponse{
		BankID:        b.BankID,
		Name:          b.Name,
		AccountNumber: b.AccountNumber,
		AccountHolder: b.AccountHolder,
	}
}
