// Package errors provides structured application errors for the API.
// Service-layer code returns AppError values so handlers can map every
// failure to a consistent JSON body and status code without leaking
// internal details to the dashboard.
package errors

import "net/http"

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

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Fund errors. Duplicate keys surface as 400: the dashboard consumes one
// uniform "rejected write" status for conflicts and validation failures.
var (
	ErrFundNotFound     = &AppError{Code: "FUND_NOT_FOUND", Message: "Fund not found", StatusCode: http.StatusNotFound}
	ErrDuplicateFund    = &AppError{Code: "DUPLICATE_FUND_NAME", Message: "A fund with this name already exists", StatusCode: http.StatusBadRequest}
	ErrFutureInception  = &AppError{Code: "FUTURE_INCEPTION_DATE", Message: "Inception date cannot be in the future", StatusCode: http.StatusBadRequest}
	ErrDuplicateNAVDate = &AppError{Code: "DUPLICATE_NAV_DATE", Message: "A performance record for this fund and date already exists", StatusCode: http.StatusBadRequest}
)

// Holding errors.
var (
	ErrHoldingNotFound = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Holding not found", StatusCode: http.StatusNotFound}
	ErrFuturePurchase  = &AppError{Code: "FUTURE_PURCHASE_DATE", Message: "Purchase date cannot be in the future", StatusCode: http.StatusBadRequest}
)

// Stock price errors.
var (
	ErrStockPriceNotFound  = &AppError{Code: "STOCK_PRICE_NOT_FOUND", Message: "Stock price not found", StatusCode: http.StatusNotFound}
	ErrDuplicateStockPrice = &AppError{Code: "DUPLICATE_STOCK_PRICE", Message: "A price for this ticker and date already exists", StatusCode: http.StatusBadRequest}
	ErrInvalidPriceRange   = &AppError{Code: "INVALID_PRICE_RANGE", Message: "Prices must satisfy low <= open <= high and low <= close <= high", StatusCode: http.StatusBadRequest}
	ErrFuturePriceDate     = &AppError{Code: "FUTURE_PRICE_DATE", Message: "Price date cannot be in the future", StatusCode: http.StatusBadRequest}
)

// Peer fund errors.
var (
	ErrPeerFundNotFound = &AppError{Code: "PEER_FUND_NOT_FOUND", Message: "Peer fund not found", StatusCode: http.StatusNotFound}
)
