package mapping

import (
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt. Client projections are not carried over.
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:          d.DebtID,
		ClientID:        d.ClientID,
		DebtDate:        d.Date,
		DebtAmount:      d.DebtAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt to a domain Debt, copying the client projections when loaded.
func ToDomainDebt(m models.Debt) domain.Debt {
	d := domain.Debt{
		DebtID:          m.DebtID,
		ClientID:        m.ClientID,
		Date:            m.DebtDate,
		DebtAmount:      m.DebtAmount,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.Client != nil {
		d.ClientName = m.Client.Name
		d.ClientPhone = m.Client.Phone
	}
	return d
}

// ToDomainDebtSlice converts a slice of model Debts to a slice of domain Debts
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
