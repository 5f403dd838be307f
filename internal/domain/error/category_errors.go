// Package error defines domain-specific errors for the product catalog.
package error

// StateError reports an operation that is invalid in the entity's current
// lifecycle state, such as removing an already removed category.
type StateError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return e.Message
}

// NewStateError creates a StateError with the given code and message.
func NewStateError(code, message string) *StateError {
	return &StateError{
		Code:    code,
		Message: message,
	}
}
