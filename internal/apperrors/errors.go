package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicatePhone indicates that the phone number is already registered to a client.
var ErrDuplicatePhone = errors.New("a client with this phone number already exists")

// ErrInvalidAmount indicates a monetary amount that is zero or negative.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrExceedsRemaining indicates a payment larger than the debt's remaining balance.
var ErrExceedsRemaining = errors.New("payment amount exceeds the remaining balance of the debt")

// ErrAlreadySettled indicates that the debt has nothing left to pay.
var ErrAlreadySettled = errors.New("debt is already fully paid")

// ErrHasDependents indicates that an entity cannot be deleted while children reference it.
var ErrHasDependents = errors.New("resource has dependent records")

// AppError carries an HTTP-like status code alongside the underlying cause.
// It is used for infrastructure failures where the caller only needs a generic message.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewInternalServerError wraps err as a 500 AppError.
func NewInternalServerError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// NewBadRequestError creates a 400 AppError without an underlying cause.
func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// IsBusinessRule reports whether err is one of the ledger/business rule violations
// that callers should see as a client error rather than a server fault.
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicatePhone) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrExceedsRemaining) ||
		errors.Is(err, ErrAlreadySettled) ||
		errors.Is(err, ErrHasDependents)
}
