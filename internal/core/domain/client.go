package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
)

// phonePattern allows digits, '+', '-', whitespace and parentheses.
var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// Client is a person or business that owes debts.
type Client struct {
	ClientID int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"` // unique across clients
	Address  string `json:"address"`
	AuditFields
}

// ClientFilter narrows client listings. Empty fields are ignored.
type ClientFilter struct {
	Name  string // case-insensitive substring
	Phone string // substring
}

// IsValidPhone reports whether phone matches the accepted phone format.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Validate checks the field-level rules for a client.
func (c Client) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		problems = append(problems, "phone is required")
	} else if !IsValidPhone(c.Phone) {
		problems = append(problems, "phone has an invalid format")
	}
	if strings.TrimSpace(c.Address) == "" {
		problems = append(problems, "address is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
