package models

import "github.com/shopspring/decimal"

// Payment is the storage representation of a payment.
type Payment struct {
	PaymentID   int64           `db:"payment_id" gorm:"column:payment_id;primaryKey;autoIncrement"`
	DebtID      int64           `db:"debt_id" gorm:"column:debt_id;not null;index:idx_payments_debt_id"`
	Amount      decimal.Decimal `db:"amount" gorm:"column:amount;type:decimal(12,2);not null"`
	PaymentDate string          `db:"payment_date" gorm:"column:payment_date;size:50;not null"`
	AuditFields

	// Debt is only populated by reads that join the owning debt and its client.
	Debt *Debt `db:"-" gorm:"-"`
}

func (Payment) TableName() string { return "payments" }
