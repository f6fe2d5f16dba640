package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeDuplicateEmail  = "DUPLICATE_EMAIL"
	ErrCodeBadCredentials  = "BAD_CREDENTIALS"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
	ErrCodeInvalidTotal    = "INVALID_TOTAL"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

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
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrCategoryNotFound    = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrUserNotFound        = NewDomainError(ErrCodeNotFound, "User not found")
	ErrTranslationNotFound = NewDomainError(ErrCodeNotFound, "Translation not found")
	ErrDuplicateEmail      = NewDomainError(ErrCodeDuplicateEmail, "An account with this email already exists")
	ErrBadCredentials      = NewDomainError(ErrCodeBadCredentials, "Invalid email or password")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Unrecognised status value")
	ErrInvalidTotal        = NewDomainError(ErrCodeInvalidTotal, "Order total does not match subtotal plus shipping and tax")
)
