package mapping

import (
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/models"
)

// ToModelPurchase converts a domain PurchaseRecord to its row model.
func ToModelPurchase(d domain.PurchaseRecord) models.Purchase {
	return models.Purchase{
		PurchaseID:         d.PurchaseID,
		Kind:               string(d.Kind),
		OriginalPurchaseID: d.OriginalPurchaseID,
		PurchaseDate:       d.PurchaseDate,
		TotalAmount:        d.TotalAmount,
		AmountPaid:         d.AmountPaid,
		PaymentStatus:      string(d.PaymentStatus),
		PaymentMethod:      string(d.PaymentMethod),
		BankID:             d.BankID,
		IsReturned:         d.IsReturned,
		SupplierName:       d.SupplierName,
		Note:               d.Note,
		DebtCutPaymentID:   d.DebtCutPaymentID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a row model to a domain PurchaseRecord.
func ToDomainPurchase(m models.Purchase) domain.PurchaseRecord {
	return domain.PurchaseRecord{
		PurchaseID:         m.PurchaseID,
		Kind:               domain.RecordKind(m.Kind),
		OriginalPurchaseID: m.OriginalPurchaseID,
		PurchaseDate:       m.PurchaseDate,
		TotalAmount:        m.TotalAmount,
		AmountPaid:         m.AmountPaid,
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
		BankID:             m.BankID,
		IsReturned:         m.IsReturned,
		SupplierName:       m.SupplierName,
		Note:               m.Note,
		DebtCutPaymentID:   m.DebtCutPaymentID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseItems converts domain line items to purchase_items rows.
func ToModelPurchaseItems(purchaseID string, items []domain.LineItem) []models.PurchaseItem {
	rows := make([]models.PurchaseItem, len(items))
	for i, li := range items {
		rows[i] = models.PurchaseItem{
			PurchaseID:  purchaseID,
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

// ToDomainLineItemFromPurchase converts a purchase_items row to a domain line item.
func ToDomainLineItemFromPurchase(m models.PurchaseItem) domain.LineItem {
	return domain.LineItem{
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		UnitCost:    m.UnitCost,
	}
}

// ToModelPurchasePayment converts a domain payment entry to a purchase_payments row.
func ToModelPurchasePayment(purchaseID string, p domain.PaymentEntry) models.PurchasePayment {
	return models.PurchasePayment{
		PaymentID:  p.PaymentID,
		PurchaseID: purchaseID,
		PaidAt:     p.PaidAt,
		Amount:     p.Amount,
		Method:     string(p.Method),
		BankID:     p.BankID,
		Note:       p.Note,
		CreatedBy:  p.CreatedBy,
	}
}

// ToDomainPurchasePayment converts a purchase_payments row to a domain payment entry.
func ToDomainPurchasePayment(m models.PurchasePayment) domain.PaymentEntry {
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
