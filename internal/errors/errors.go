// Package errors provides custom error types for the folio API.
// All service-layer errors should use AppError so that handlers can render
// consistent responses without leaking store or driver details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Record store errors.
var (
	ErrValidation       = &AppError{Code: "VALIDATION_FAILED", Message: "Record failed schema validation", StatusCode: http.StatusUnprocessableEntity}
	ErrMissingReference = &AppError{Code: "MISSING_REFERENCE", Message: "Record references a missing entity", StatusCode: http.StatusConflict}
	ErrStore            = &AppError{Code: "STORE_ERROR", Message: "The record store reported a failure", StatusCode: http.StatusBadGateway}
)

// Entity errors.
var (
	ErrUserNotFound       = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
)

// ValidationError names the record field that broke a schema constraint.
// Field uses the store's column naming (e.g. "amount_invested").
type ValidationError struct {
	Entity     string
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: failed %q constraint", e.Entity, e.Field, e.Constraint)
}

// Validation builds an ErrValidation AppError carrying a *ValidationError.
func Validation(entity, field, constraint string) *AppError {
	detail := &ValidationError{Entity: entity, Field: field, Constraint: constraint}
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    fmt.Sprintf("Invalid %s: field %s failed %s", entity, field, constraint),
		StatusCode: ErrValidation.StatusCode,
		Internal:   detail,
	}
}

// MissingReferenceError reports an investment whose product could not be resolved.
type MissingReferenceError struct {
	InvestmentID string
	ProductID    string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("investment %s references missing product %s", e.InvestmentID, e.ProductID)
}

// MissingReference builds an ErrMissingReference AppError carrying a *MissingReferenceError.
func MissingReference(investmentID, productID string) *AppError {
	detail := &MissingReferenceError{InvestmentID: investmentID, ProductID: productID}
	return &AppError{
		Code:       ErrMissingReference.Code,
		Message:    "Product not found for investment " + investmentID,
		StatusCode: ErrMissingReference.StatusCode,
		Internal:   detail,
	}
}
