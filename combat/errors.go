package combat

import (
	"errors"
	"fmt"
)

// Code classifies a combat error
type Code string

const (
	CodeInvalidCommand     Code = "INVALID_COMMAND"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodePartyFull          Code = "PARTY_FULL"
	CodePartyEmpty         Code = "PARTY_EMPTY"
	CodeInsufficientMana   Code = "INSUFFICIENT_MANA"
	CodeCombatantNotFound  Code = "COMBATANT_NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Error is a coded error carrying optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// Sentinels for errors.Is matching; compare by code only
var (
	ErrInvalidCommand    = &Error{Code: CodeInvalidCommand, Message: "invalid command"}
	ErrInvalidArgument   = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrPartyFull         = &Error{Code: CodePartyFull, Message: "party is full"}
	ErrPartyEmpty        = &Error{Code: CodePartyEmpty, Message: "party is empty"}
	ErrInsufficientMana  = &Error{Code: CodeInsufficientMana, Message: "insufficient mana"}
	ErrCombatantNotFound = &Error{Code: CodeCombatantNotFound, Message: "combatant not found"}
)

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps err, preserving its code if it is already an *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:    existing.Code,
			Message: message,
			Cause:   err,
			Meta:    existing.Meta,
		}
	}

	return &Error{
		Code:    CodeFailedPrecondition,
		Message: message,
		Cause:   err,
	}
}

// GetCode extracts the code from err, empty if err is not a combat error
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
