package models

import "github.com/shopspring/decimal"

// Debt is the storage representation of a debt.
type Debt struct {
	DebtID          int64           `db:"debt_id" gorm:"column:debt_id;primaryKey;autoIncrement"`
	ClientID        int64           `db:"client_id" gorm:"column:client_id;not null;index:idx_debts_client_id"`
	DebtDate        string          `db:"debt_date" gorm:"column:debt_date;size:50;not null"`
	DebtAmount      decimal.Decimal `db:"debt_amount" gorm:"column:debt_amount;type:decimal(12,2);not null"`
	PaidAmount      decimal.Decimal `db:"paid_amount" gorm:"column:paid_amount;type:decimal(12,2);not null"`
	RemainingAmount decimal.Decimal `db:"remaining_amount" gorm:"column:remaining_amount;type:decimal(12,2);not null"`
	AuditFields

	// Payments declares the payments.debt_id foreign key for gorm migrations.
	Payments []Payment `db:"-" gorm:"foreignKey:DebtID;constraint:OnDelete:CASCADE"`

	// Client is only populated by reads that join the owning client.
	Client *Client `db:"-" gorm:"-"`
}

func (Debt) TableName() string { return "debts" }
