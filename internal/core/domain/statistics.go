package domain

import "github.com/shopspring/decimal"

// ClientDebtStatistics aggregates all debts owned by one client.
type ClientDebtStatistics struct {
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
	DebtCount      int64           `json:"debtCount"`
	SettledCount   int64           `json:"settledCount"`
	UnsettledCount int64           `json:"unsettledCount"`
}

// PaymentStatistics aggregates the payments recorded against one debt.
type PaymentStatistics struct {
	Count           int             `json:"count"`
	Total           decimal.Decimal `json:"total"`
	Mean            decimal.Decimal `json:"mean"`
	Min             decimal.Decimal `json:"min"`
	Max             decimal.Decimal `json:"max"`
	DebtAmount      decimal.Decimal `json:"debtAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	PercentPaid     decimal.Decimal `json:"percentPaid"`
}
