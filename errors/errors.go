// Package errors provides standardized error handling patterns for ForgeKit
// construction strategies. It includes error classification, standard error
// variables, and helper functions for consistent error wrapping and
// classification across the framework.
//
// Every error produced by the framework is a local, recoverable condition
// surfaced to the caller. Construction is deterministic and synchronous, so
// there is no retry layer: retrying without changing inputs would reproduce
// the same error.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of construction errors for
// handling purposes
type ErrorClass int

const (
	// ClassConflict represents registration conflicts such as duplicate keys
	ClassConflict ErrorClass = iota
	// ClassNotFound represents lookups of keys, families, or kinds that were
	// never registered
	ClassNotFound
	// ClassInvalid represents errors due to invalid input, rejected products,
	// or malformed catalogs
	ClassInvalid
	// ClassState represents operations invoked in the wrong lifecycle state,
	// such as mutating a finalized builder
	ClassState
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ClassConflict:
		return "conflict"
	case ClassNotFound:
		return "not_found"
	case ClassInvalid:
		return "invalid"
	case ClassState:
		return "state"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registration errors
	ErrDuplicateKey   = errors.New("key already registered")
	ErrEmptyKey       = errors.New("key must not be empty")
	ErrNilConstructor = errors.New("constructor must not be nil")

	// Resolution errors
	ErrUnknownKey    = errors.New("key not registered")
	ErrUnknownFamily = errors.New("family not registered")
	ErrUnknownKind   = errors.New("kind not bound in family")

	// Builder lifecycle errors
	ErrBuilderFinalized = errors.New("builder already finalized")
	ErrInvalidProduct   = errors.New("product failed validation")

	// Product protocol errors
	ErrAbstractMethod = errors.New("abstract method not implemented")

	// Catalog errors
	ErrInvalidCatalog    = errors.New("invalid catalog document")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsConflict checks if an error is a registration conflict
func IsConflict(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassConflict
	}

	return errors.Is(err, ErrDuplicateKey)
}

// IsNotFound checks if an error represents a miss on a key, family, or kind
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassNotFound
	}

	return errors.Is(err, ErrUnknownKey) ||
		errors.Is(err, ErrUnknownFamily) ||
		errors.Is(err, ErrUnknownKind)
}

// IsInvalid checks if an error is due to invalid input or a rejected product
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassInvalid
	}

	return errors.Is(err, ErrEmptyKey) ||
		errors.Is(err, ErrNilConstructor) ||
		errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrInvalidCatalog) ||
		errors.Is(err, ErrUnsupportedFormat)
}

// IsState checks if an error came from an operation in the wrong lifecycle
// state
func IsState(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassState
	}

	return errors.Is(err, ErrBuilderFinalized) ||
		errors.Is(err, ErrAbstractMethod)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassInvalid // Default for nil
	}

	if IsConflict(err) {
		return ClassConflict
	}
	if IsNotFound(err) {
		return ClassNotFound
	}
	if IsState(err) {
		return ClassState
	}

	// Default to invalid for unknown errors; construction never retries
	return ClassInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapConflict(), WrapNotFound(),
// WrapInvalid(), or WrapState() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapConflict wraps an error as a registration conflict with context
func WrapConflict(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassConflict, wrappedErr, component, method, wrappedErr.Error())
}

// WrapNotFound wraps an error as a lookup miss with context
func WrapNotFound(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassNotFound, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapState wraps an error as a lifecycle-state violation with context
func WrapState(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassState, wrappedErr, component, method, wrappedErr.Error())
}
