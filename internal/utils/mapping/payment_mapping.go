package mapping

import (
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		DebtID:      d.DebtID,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment, copying the debt and client projections when loaded.
func ToDomainPayment(m models.Payment) domain.Payment {
	p := domain.Payment{
		PaymentID:   m.PaymentID,
		DebtID:      m.DebtID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Debt != nil {
		p.DebtAmount = m.Debt.DebtAmount
		if m.Debt.Client != nil {
			p.ClientName = m.Debt.Client.Name
			p.ClientPhone = m.Debt.Client.Phone
		}
	}
	return p
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
