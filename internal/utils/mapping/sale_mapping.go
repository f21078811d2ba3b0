package mapping

import (
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/models"
)

// ToModelSale converts a domain SaleRecord to its row model (items and
// payments are mapped separately).
func ToModelSale(d domain.SaleRecord) models.Sale {
	return models.Sale{
		SaleID:           d.SaleID,
		Kind:             string(d.Kind),
		OriginalSaleID:   d.OriginalSaleID,
		SaleDate:         d.SaleDate,
		TotalAmount:      d.TotalAmount,
		AmountPaid:       d.AmountPaid,
		ChangeGiven:      d.Change,
		PaymentStatus:    string(d.PaymentStatus),
		PaymentMethod:    string(d.PaymentMethod),
		BankID:           d.BankID,
		IsReturned:       d.IsReturned,
		CustomerName:     d.CustomerName,
		CashierID:        d.CashierID,
		Note:             d.Note,
		DebtCutPaymentID: d.DebtCutPaymentID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a row model to a domain SaleRecord.
func ToDomainSale(m models.Sale) domain.SaleRecord {
	return domain.SaleRecord{
		SaleID:           m.SaleID,
		Kind:             domain.RecordKind(m.Kind),
		OriginalSaleID:   m.OriginalSaleID,
		SaleDate:         m.SaleDate,
		TotalAmount:      m.TotalAmount,
		AmountPaid:       m.AmountPaid,
		Change:           m.ChangeGiven,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod:    domain.PaymentMethod(m.PaymentMethod),
		BankID:           m.BankID,
		IsReturned:       m.IsReturned,
		CustomerName:     m.CustomerName,
		CashierID:        m.CashierID,
		Note:             m.Note,
		DebtCutPaymentID: m.DebtCutPaymentID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleItems converts domain line items to sale_items rows.
func ToModelSaleItems(saleID string, items []domain.LineItem) []models.SaleItem {
	rows := make([]models.SaleItem, len(items))
	for i, li := range items {
		rows[i] = models.SaleItem{
			SaleID:      saleID,
			LineNo:      i + 1,
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			UnitCost:    li.UnitCost,
		}
	}
	return rows
}

// ToDomainLineItemFromSale converts a sale_items row to a domain line item.
func ToDomainLineItemFromSale(m models.SaleItem) domain.LineItem {
	return domain.LineItem{
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		UnitCost:    m.UnitCost,
	}
}

// ToModelSalePayment converts a domain payment entry to a sale_payments row.
func ToModelSalePayment(saleID string, p domain.PaymentEntry) models.SalePayment {
	return models.SalePayment{
		PaymentID: p.PaymentID,
		SaleID:    saleID,
		PaidAt:    p.PaidAt,
		Amount:    p.Amount,
		Method:    string(p.Method),
		BankID:    p.BankID,
		Note:      p.Note,
		CreatedBy: p.CreatedBy,
	}
}

// ToDomainSalePayment converts a sale_payments row to a domain payment entry.
func ToDomainSalePayment(m models.SalePayment) domain.PaymentEntry {
	return domain.PaymentEntry{
		PaymentID: m.PaymentID,
		PaidAt:    m.PaidAt,
		Amount:    m.Amount,
		Method:    domain.PaymentMethod(m.Method),
		BankID:    m.BankID,
		Note:      m.Note,
		CreatedBy: m.CreatedBy,
	}
}
