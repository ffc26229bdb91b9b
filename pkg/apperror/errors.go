package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes, stable across the API surface.
const (
	CodeFraudBlocked             = "FRAUD_001"
	CodeRateLimited              = "RATE_001"
	CodeInsufficientBalance      = "BAL_001"
	CodeInsufficientAgentBalance = "BAL_002"
	CodeRequestNotFound          = "REQ_001"
	CodeRequestNotAuthorized     = "REQ_002"
	CodeRequestAlreadyProcessed  = "REQ_003"
	CodeConcurrencyConflict      = "CONC_001"
	CodeValidation               = "VAL_001"
	CodeNotFound                 = "VAL_002"
	CodeInvalidToken             = "AUTH_001"
	CodeInternal                 = "SYS_001"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Fraud & Velocity (FRAUD, RATE) ----

// ErrFraudBlocked carries the fraud guard's verdict verbatim to the caller.
func ErrFraudBlocked(reason, riskLevel string) *AppError {
	e := New(CodeFraudBlocked, reason, http.StatusForbidden)
	e.Details = map[string]string{"risk_level": riskLevel}
	return e
}

func ErrRateLimited(message string) *AppError {
	return New(CodeRateLimited, message, http.StatusTooManyRequests)
}

// ---- Balances (BAL) ----

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired)
}

// ErrInsufficientAgentBalance distinguishes which of the agent's two pools
// fell short ("cash" or "digital").
func ErrInsufficientAgentBalance(pool string) *AppError {
	e := New(CodeInsufficientAgentBalance, "Agent has insufficient "+pool+" balance", http.StatusPaymentRequired)
	e.Details = map[string]string{"pool": pool}
	return e
}

// ---- Escrow Requests (REQ) ----

func ErrRequestNotFound() *AppError {
	return New(CodeRequestNotFound, "No matching settlement request", http.StatusNotFound)
}

func ErrRequestNotAuthorized() *AppError {
	return New(CodeRequestNotAuthorized, "Request belongs to a different agent", http.StatusForbidden)
}

func ErrRequestAlreadyProcessed() *AppError {
	return New(CodeRequestAlreadyProcessed, "Request already processed", http.StatusConflict)
}

// ---- Concurrency (CONC) ----

func ErrConcurrencyConflict() *AppError {
	return New(CodeConcurrencyConflict, "Concurrent update detected, please retry", http.StatusConflict)
}

// ---- Validation & Auth (VAL, AUTH) ----

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
