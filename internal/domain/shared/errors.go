package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidAmount      = NewDomainError("INVALID_AMOUNT", "Amount must be a positive value with at most two decimals")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock  = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrPersistenceFailure = NewDomainError("PERSISTENCE_FAILURE", "Store write failed, no changes were committed")
	ErrUnknownOutcome     = NewDomainError("UNKNOWN_OUTCOME", "Transaction outcome is indeterminate, re-read state before retrying")
	ErrDuplicatePayment   = NewDomainError("DUPLICATE_PAYMENT", "A payment with this idempotency key was already committed")
)
