package dto

import (
	"time"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment against a debt.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gte=0.01" swaggertype:"string" example:"400.00"`
	PaymentDate string          `json:"paymentDate" binding:"required"`
	DebtID      int64           `json:"debtId" binding:"required,gt=0"`
}

// UpdatePaymentRequest defines the fields of a payment that may change.
type UpdatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gte=0.01" swaggertype:"string" example:"400.00"`
	PaymentDate string          `json:"paymentDate" binding:"required"`
}

// PayInFullRequest carries the date recorded on the settling payment.
type PayInFullRequest struct {
	PaymentDate string `json:"paymentDate" binding:"required"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	PageParams
	DebtID    *int64           `form:"debtId"`
	Phone     string           `form:"phone"`
	MinAmount *decimal.Decimal `form:"minAmount"`
	MaxAmount *decimal.Decimal `form:"maxAmount"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentDate   string          `json:"paymentDate"`
	DebtID        int64           `json:"debtId"`
	ClientName    string          `json:"clientName,omitempty"`
	ClientPhone   string          `json:"clientPhone,omitempty"`
	DebtAmount    decimal.Decimal `json:"debtAmount" swaggertype:"string"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.PaymentID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		DebtID:        p.DebtID,
		ClientName:    p.ClientName,
		ClientPhone:   p.ClientPhone,
		DebtAmount:    p.DebtAmount,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// PaymentStatisticsResponse defines the statistics returned for a debt's payments.
type PaymentStatisticsResponse struct {
	DebtID          int64           `json:"debtId"`
	Count           int             `json:"count"`
	Total           decimal.Decimal `json:"total" swaggertype:"string"`
	Mean            decimal.Decimal `json:"mean" swaggertype:"string"`
	Min             decimal.Decimal `json:"min" swaggertype:"string"`
	Max             decimal.Decimal `json:"max" swaggertype:"string"`
	DebtAmount      decimal.Decimal `json:"debtAmount" swaggertype:"string"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" swaggertype:"string"`
	PercentPaid     decimal.Decimal `json:"percentPaid" swaggertype:"string"`
}

// ToPaymentStatisticsResponse converts payment statistics to their DTO
func ToPaymentStatisticsResponse(debtID int64, s domain.PaymentStatistics) PaymentStatisticsResponse {
	return PaymentStatisticsResponse{
		DebtID:          debtID,
		Count:           s.Count,
		Total:           s.Total,
		Mean:            s.Mean,
		Min:             s.Min,
		Max:             s.Max,
		DebtAmount:      s.DebtAmount,
		RemainingAmount: s.RemainingAmount,
		PercentPaid:     s.PercentPaid,
	}
}
