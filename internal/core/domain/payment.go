package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Payment is a monetary application against a single debt.
// CreatedAt is stamped once at persistence and never changes afterwards.
type Payment struct {
	PaymentID   int64           `json:"id"`
	DebtID      int64           `json:"debtId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"` // free-form, not parsed
	AuditFields

	// Read projections filled by lookups that join the debt and its client.
	ClientName  string          `json:"clientName,omitempty"`
	ClientPhone string          `json:"clientPhone,omitempty"`
	DebtAmount  decimal.Decimal `json:"debtAmount"`
}

// PaymentFilter narrows payment listings. Nil or empty fields are ignored.
type PaymentFilter struct {
	DebtID    *int64
	Phone     string // substring on the owning client's phone
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Validate checks the field-level rules for a payment.
// Non-positive amounts are left to the ledger, which reports them as invalid amounts.
func (p Payment) Validate() error {
	var problems []string
	if strings.TrimSpace(p.PaymentDate) == "" {
		problems = append(problems, "paymentDate is required")
	}
	if p.Amount.IsPositive() {
		if p.Amount.LessThan(MinimumAmount) {
			problems = append(problems, fmt.Sprintf("amount must be at least %s", MinimumAmount.StringFixed(2)))
		}
		problems = append(problems, amountProblems("amount", p.Amount)...)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
