package dto

import (
	"time"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to record a debt.
type CreateDebtRequest struct {
	Date       string          `json:"date" binding:"required"`
	DebtAmount decimal.Decimal `json:"debtAmount" binding:"required,gte=0.01" swaggertype:"string" example:"1000.00"`
	ClientID   int64           `json:"clientId" binding:"required,gt=0"`
}

// UpdateDebtRequest defines the fields of a debt that may change. Paid and remaining
// amounts are always derived from the payments.
type UpdateDebtRequest struct {
	Date       string          `json:"date" binding:"required"`
	DebtAmount decimal.Decimal `json:"debtAmount" binding:"required,gte=0.01" swaggertype:"string" example:"1000.00"`
}

// ListDebtsParams defines query parameters for listing debts.
type ListDebtsParams struct {
	PageParams
	ClientID  *int64           `form:"clientId"`
	Phone     string           `form:"phone"`
	MinAmount *decimal.Decimal `form:"minAmount"`
	MaxAmount *decimal.Decimal `form:"maxAmount"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	ID              int64             `json:"id"`
	Date            string            `json:"date"`
	DebtAmount      decimal.Decimal   `json:"debtAmount" swaggertype:"string"`
	PaidAmount      decimal.Decimal   `json:"paidAmount" swaggertype:"string"`
	RemainingAmount decimal.Decimal   `json:"remainingAmount" swaggertype:"string"`
	Status          domain.DebtStatus `json:"status"`
	ClientID        int64             `json:"clientId"`
	ClientName      string            `json:"clientName,omitempty"`
	ClientPhone     string            `json:"clientPhone,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastUpdatedAt   time.Time         `json:"lastUpdatedAt"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse DTO
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		ID:              d.DebtID,
		Date:            d.Date,
		DebtAmount:      d.DebtAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		Status:          d.Status(),
		ClientID:        d.ClientID,
		ClientName:      d.ClientName,
		ClientPhone:     d.ClientPhone,
		CreatedAt:       d.CreatedAt,
		LastUpdatedAt:   d.LastUpdatedAt,
	}
}

// ToListDebtResponse converts a slice of domain.Debt to a slice of DebtResponse DTOs
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}

// ClientStatisticsResponse defines the statistics returned for a client's debts.
type ClientStatisticsResponse struct {
	ClientID       int64           `json:"clientId"`
	TotalDebt      decimal.Decimal `json:"totalDebt" swaggertype:"string"`
	TotalPaid      decimal.Decimal `json:"totalPaid" swaggertype:"string"`
	TotalRemaining decimal.Decimal `json:"totalRemaining" swaggertype:"string"`
	DebtCount      int64           `json:"debtCount"`
	SettledCount   int64           `json:"settledCount"`
	UnsettledCount int64           `json:"unsettledCount"`
}

// ToClientStatisticsResponse converts client statistics to their DTO
func ToClientStatisticsResponse(clientID int64, s domain.ClientDebtStatistics) ClientStatisticsResponse {
	return ClientStatisticsResponse{
		ClientID:       clientID,
		TotalDebt:      s.TotalDebt,
		TotalPaid:      s.TotalPaid,
		TotalRemaining: s.TotalRemaining,
		DebtCount:      s.DebtCount,
		SettledCount:   s.SettledCount,
		UnsettledCount: s.UnsettledCount,
	}
}
