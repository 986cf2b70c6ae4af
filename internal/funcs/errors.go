package funcs

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes registry errors.
type ErrorCode string

const (
	// ErrCodeAliasConflict indicates two definitions claim the same alias.
	ErrCodeAliasConflict ErrorCode = "ALIAS_CONFLICT"

	// ErrCodeDuplicateFunction indicates a primary name is registered twice.
	ErrCodeDuplicateFunction ErrorCode = "DUPLICATE_FUNCTION"

	// ErrCodeInvalidDefinition indicates a definition without a name or builder.
	ErrCodeInvalidDefinition ErrorCode = "INVALID_DEFINITION"

	// ErrCodeUnknownFunction indicates resolve was called for an unregistered name.
	ErrCodeUnknownFunction ErrorCode = "UNKNOWN_FUNCTION"
)

// ErrUnknownFunction is wrapped by every InternalError raised for a name
// that is not registered.
var ErrUnknownFunction = errors.New("unknown function")

// ConfigError is raised while building a registry. It is fatal: a registry
// that fails to build must not be used.
type ConfigError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Key is the canonical name both definitions claim.
	Key string

	// Existing is the primary name that registered Key first.
	Existing string

	// Conflicting is the primary name of the definition being added.
	Conflicting string

	// Message overrides the generated text (used for invalid definitions).
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Code == ErrCodeAliasConflict:
		return fmt.Sprintf("alias [%s] is used by [%s] and [%s]", e.Key, e.Existing, e.Conflicting)
	case e.Code == ErrCodeDuplicateFunction:
		return fmt.Sprintf("function [%s] is registered by [%s] and [%s]", e.Key, e.Existing, e.Conflicting)
	default:
		return fmt.Sprintf("%s: [%s]", e.Code, e.Key)
	}
}

// InternalError signals a defect in the calling layer, such as resolving a
// name the analyzer should have rejected. It is not a user error.
type InternalError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *InternalError) Error() string { return e.Message }

func (e *InternalError) Unwrap() error { return e.Err }

// ArgumentError is the local validation failure of a builder contract:
// wrong argument count or a DISTINCT the function does not accept.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

// ParsingError is the user-facing, located error returned by Resolve when a
// builder contract rejects a call. Message is the full text
// ("error building [abs]: expects exactly one argument"); Err is the
// original ArgumentError.
type ParsingError struct {
	Message string
	Line    int
	Column  int
	Err     error
}

// Error implements the error interface.
func (e *ParsingError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *ParsingError) Unwrap() error { return e.Err }

// PatternError reports a listing pattern that is not a valid regular
// expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid function pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// IsConfigError returns true if err is a registry configuration error.
// Uses errors.As to handle wrapped errors.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsParsingError returns true if err is a located resolution error.
// Uses errors.As to handle wrapped errors.
func IsParsingError(err error) bool {
	var pe *ParsingError
	return errors.As(err, &pe)
}

// IsUnknownFunction returns true if err reports an unregistered function.
func IsUnknownFunction(err error) bool {
	return errors.Is(err, ErrUnknownFunction)
}
