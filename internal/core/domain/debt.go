package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MinimumAmount is the smallest accepted monetary amount.
var MinimumAmount = decimal.New(1, -2)

// MaximumAmount is the largest value a NUMERIC(12,2) column holds.
var MaximumAmount = decimal.RequireFromString("9999999999.99")

// amountProblems reports the storage rules amount breaks: more than two decimal places or more than MaximumAmount.
func amountProblems(field string, amount decimal.Decimal) []string {
	var problems []string
	if !amount.Equal(amount.Round(2)) {
		problems = append(problems, fmt.Sprintf("%s must have at most 2 decimal places", field))
	}
	if amount.GreaterThan(MaximumAmount) {
		problems = append(problems, fmt.Sprintf("%s must be at most %s", field, MaximumAmount.StringFixed(2)))
	}
	return problems
}

// DebtStatus is derived from the remaining amount; it is never stored.
type DebtStatus string

const (
	DebtOpen    DebtStatus = "OPEN"
	DebtSettled DebtStatus = "SETTLED"
)

// Debt is an amount owed by a client as of a given date.
// PaidAmount and RemainingAmount are maintained by the ledger and must not be
// assigned by callers outside of it.
type Debt struct {
	DebtID          int64           `json:"id"`
	ClientID        int64           `json:"clientId"`
	Date            string          `json:"date"` // free-form, not parsed
	DebtAmount      decimal.Decimal `json:"debtAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	AuditFields

	// Read projections filled by lookups that join the owning client.
	ClientName  string `json:"clientName,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`
}

// DebtFilter narrows debt listings. Nil or empty fields are ignored.
type DebtFilter struct {
	ClientID  *int64
	Phone     string // substring on the owning client's phone
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Status    *DebtStatus
}

// IsSettled reports whether nothing remains to be paid.
func (d Debt) IsSettled() bool {
	return d.RemainingAmount.LessThanOrEqual(decimal.Zero)
}

// Status returns the derived state of the debt.
func (d Debt) Status() DebtStatus {
	if d.IsSettled() {
		return DebtSettled
	}
	return DebtOpen
}

// Validate checks the field-level rules for a debt.
func (d Debt) Validate() error {
	var problems []string
	if strings.TrimSpace(d.Date) == "" {
		problems = append(problems, "date is required")
	}
	if d.DebtAmount.LessThan(MinimumAmount) {
		problems = append(problems, fmt.Sprintf("debtAmount must be at least %s", MinimumAmount.StringFixed(2)))
	}
	problems = append(problems, amountProblems("debtAmount", d.DebtAmount)...)
	if d.ClientID <= 0 {
		problems = append(problems, "clientId is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
