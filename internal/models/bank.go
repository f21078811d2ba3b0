package models

// Bank is the DB row model for the banks table.
type Bank struct {
	BankID        string `db:"bank_id"`
	Name          string `db:"name"`
	AccountNumber string `db:"account_number"`
	AccountHolder string `db:"account_holder"`
	AuditFields
}
