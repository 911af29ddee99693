// Package errors categorizes every failure mode the CLI can surface and
// maps each category to a process exit code.
package errors

import (
	"errors"
	"strings"
)

// Standard error categories
var (
	// ErrUsage indicates an invalid invocation shape (bad flags, bad format)
	ErrUsage = errors.New("usage error")

	// ErrCredential indicates a problem locating or validating the credential file
	ErrCredential = errors.New("credential error")

	// ErrAPI indicates the remote API responded with a non-2xx status
	ErrAPI = errors.New("API error")

	// ErrTransport indicates the remote API could not be reached at all
	ErrTransport = errors.New("transport error")
)

// Error represents a CLI error with context
type Error struct {
	// Original is the underlying error
	Original error

	// Category is the broad category of the error
	Category error

	// Details contains additional detail about the error
	Details string

	// Suggestions provides hints on how to fix the error
	Suggestions []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var msg strings.Builder

	if e.Category != nil {
		msg.WriteString(e.Category.Error())
		msg.WriteString(": ")
	}

	if e.Original != nil {
		msg.WriteString(e.Original.Error())
	}

	if e.Details != "" {
		if e.Original != nil {
			msg.WriteString(" (")
			msg.WriteString(e.Details)
			msg.WriteString(")")
		} else {
			msg.WriteString(e.Details)
		}
	}

	return msg.String()
}

// FormattedError returns a multi-line error message suitable for display
func (e *Error) FormattedError() string {
	var msg strings.Builder

	if e.Category != nil {
		category := e.Category.Error()
		if len(category) > 0 {
			msg.WriteString(strings.ToUpper(category[:1]) + category[1:])
			msg.WriteString(": ")
		}
	}

	if e.Original != nil {
		msg.WriteString(e.Original.Error())
		if e.Details != "" {
			msg.WriteString(" (")
			msg.WriteString(e.Details)
			msg.WriteString(")")
		}
	} else if e.Details != "" {
		msg.WriteString(e.Details)
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n• ")
			msg.WriteString(suggestion)
		}
	}

	return msg.String()
}

// Unwrap implements the errors.Unwrap interface to allow using errors.Is and errors.As
func (e *Error) Unwrap() error {
	if e.Original != nil {
		return e.Original
	}
	return e.Category
}

// Is implements the errors.Is interface to allow checking error types
func (e *Error) Is(target error) bool {
	return errors.Is(e.Category, target) || (e.Original != nil && errors.Is(e.Original, target))
}

// NewError creates a new Error with the given attributes
func NewError(original error, category error, details string, suggestions ...string) *Error {
	return &Error{
		Original:    original,
		Category:    category,
		Details:     details,
		Suggestions: suggestions,
	}
}

// NewUsageError creates a new usage error
func NewUsageError(err error, details string, suggestions ...string) error {
	return NewError(err, ErrUsage, details, suggestions...)
}

// NewCredentialError creates a new credential error
func NewCredentialError(err error, details string, suggestions ...string) error {
	return NewError(err, ErrCredential, details, suggestions...)
}

// NewAPIError creates a new API error
func NewAPIError(err error, details string, suggestions ...string) error {
	return NewError(err, ErrAPI, details, suggestions...)
}

// NewTransportError creates a new transport error
func NewTransportError(err error, details string, suggestions ...string) error {
	return NewError(err, ErrTransport, details, suggestions...)
}

// IsUsage returns true if the error indicates an invalid invocation
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsCredential returns true if the error indicates a credential problem
func IsCredential(err error) bool {
	return errors.Is(err, ErrCredential)
}

// IsAPI returns true if the error indicates an API failure
func IsAPI(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsTransport returns true if the error indicates a connectivity failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// Exit codes for the process. Runtime failures of every category share
// code 1; only invocation-shape problems get code 2.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// ExitCode maps an error to the process exit code. Errors without a
// category are treated as usage errors: the only uncategorized errors that
// reach main are cobra's own flag parsing failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsCredential(err), IsAPI(err), IsTransport(err):
		return ExitRuntime
	default:
		return ExitUsage
	}
}
