package dto

import "net/http"

// Transport-level error codes. Domain errors keep their own codes
// (NOT_FOUND, INVALID_AMOUNT, ...) and are mapped to HTTP statuses below.
const (
	// ErrCodeBadRequest is used for malformed requests and bind failures
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,

	// Lookup errors
	"NOT_FOUND": http.StatusNotFound,

	// Input errors -> 400 Bad Request
	"INVALID_AMOUNT":             http.StatusBadRequest,
	"INVALID_INPUT":              http.StatusBadRequest,
	"INVALID_CUSTOMER_NAME":      http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":       http.StatusBadRequest,
	"INVALID_DESCRIPTION":        http.StatusBadRequest,
	"INVALID_PRICE":              http.StatusBadRequest,
	"INVALID_STOCK":              http.StatusBadRequest,
	"INVALID_QUANTITY":           http.StatusBadRequest,
	"INVALID_NUMBER":             http.StatusBadRequest,
	"INVALID_REFERENCE":          http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD":     http.StatusBadRequest,
	"INVALID_INSTALLMENTS_COUNT": http.StatusBadRequest,
	"CUSTOMER_REQUIRED":          http.StatusBadRequest,
	"EMPTY_SALE":                 http.StatusBadRequest,

	// EXCEEDS_VALUE guards a partial application larger than the
	// installment's outstanding value
	"EXCEEDS_VALUE": http.StatusUnprocessableEntity,

	// Conflicts -> 409
	"ALREADY_EXISTS":        http.StatusConflict,
	"DUPLICATE_PAYMENT":     http.StatusConflict,
	"OPTIMISTIC_LOCK_ERROR": http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,

	// Storage errors. PERSISTENCE_FAILURE rolled back cleanly and is safe
	// to retry; UNKNOWN_OUTCOME is not, the caller must re-read state first.
	"PERSISTENCE_FAILURE": http.StatusServiceUnavailable,
	"UNKNOWN_OUTCOME":     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
