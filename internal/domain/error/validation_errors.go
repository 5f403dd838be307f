// Package error defines domain-specific errors for the product catalog.
package error

// Error codes follow the AREA-XXYYYY convention: PRD for products, CAT for
// categories, ORD for orders, ING for ingestion.
const (
	ErrCodeProductNameEmpty     = "PRD-010001"
	ErrCodeProductPriceNegative = "PRD-010002"
	ErrCodeProductZeroQuantity  = "PRD-010003"
	ErrCodeProductFieldsMissing = "PRD-010004"
	ErrCodeProductFieldType     = "PRD-010005"
	ErrCodeProductTypeMismatch  = "PRD-020001"

	ErrCodeCategoryNameEmpty        = "CAT-010001"
	ErrCodeCategoryDescriptionEmpty = "CAT-010002"
	ErrCodeCategoryNilProduct       = "CAT-010003"
	ErrCodeCategoryCountersMissing  = "CAT-010004"
	ErrCodeCategoryRemoved          = "CAT-020001"

	ErrCodeOrderProductMissing = "ORD-010001"
	ErrCodeOrderQuantity       = "ORD-010002"

	ErrCodeIngestion = "ING-010001"
)

// ValidationError reports a malformed constructor argument. It is always
// fatal to the call that raised it and is never retried.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(code, field, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}
