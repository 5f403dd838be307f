// Package error defines domain-specific errors for the product catalog.
package error

// IngestionError uniformly wraps every JSON-loading failure: missing file,
// malformed JSON, schema violation or field coercion failure. The original
// cause's message is always carried as context; raw I/O errors never reach
// the caller unwrapped.
type IngestionError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IngestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *IngestionError) Unwrap() error {
	return e.Err
}

// NewIngestionError creates an IngestionError wrapping err.
func NewIngestionError(message string, err error) *IngestionError {
	return &IngestionError{
		Code:    ErrCodeIngestion,
		Message: message,
		Err:     err,
	}
}
