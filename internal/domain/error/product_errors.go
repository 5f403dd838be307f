// Package error defines domain-specific errors for the product catalog.
package error

import "fmt"

// DefaultZeroQuantityMessage is the human-readable message carried by a
// ZeroQuantityError when no other message is supplied.
const DefaultZeroQuantityMessage = "товар с нулевым количеством не может быть добавлен"

// ZeroQuantityError is raised when a product is constructed with a
// non-positive quantity. It is distinct from a generic ValidationError so
// callers can special-case it.
type ZeroQuantityError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *ZeroQuantityError) Error() string {
	return e.Message
}

// NewZeroQuantityError creates a ZeroQuantityError with the default message.
func NewZeroQuantityError() *ZeroQuantityError {
	return &ZeroQuantityError{
		Code:    ErrCodeProductZeroQuantity,
		Message: DefaultZeroQuantityMessage,
	}
}

// TypeMismatchError is raised when the wrong concrete type is passed where
// an exact variant match or a product capability is required.
type TypeMismatchError struct {
	Code     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("несовместимые типы: ожидался %s, получен %s", e.Expected, e.Actual)
}

// NewTypeMismatchError creates a TypeMismatchError for the given pair.
func NewTypeMismatchError(code, expected, actual string) *TypeMismatchError {
	return &TypeMismatchError{
		Code:     code,
		Expected: expected,
		Actual:   actual,
	}
}
