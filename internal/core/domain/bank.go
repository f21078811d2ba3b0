package domain

// BankAccount is a display-only directory entry used when a payment method is
// TRANSFER.
type BankAccount struct {
	BankID        string `json:"bankID"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	AuditFields
}
