// Package errors provides a lightweight structured error type (CheckError)
// for category-based classification of failures surfaced by the deadpages CLI.
package errors

import (
	"fmt"
)

// Category represents the pipeline stage a CheckError originated from.
type Category string

const (
	// CategoryLocate covers book root resolution failures.
	CategoryLocate Category = "locate"
	// CategorySummary covers table-of-contents lookup failures.
	CategorySummary Category = "summary"
	// CategoryConfig covers configuration file failures.
	CategoryConfig Category = "config"
	// CategoryScan covers tree walk and extraction failures.
	CategoryScan Category = "scan"
)

// ContextFields carries structured context for CheckError.
type ContextFields map[string]any

// CheckError is a structured error with category and context.
//
// Error() intentionally renders only the message and cause: these strings are
// printed verbatim to the user behind an "Error:" prefix, so they must stay
// single-line and free of classification noise. The category is available to
// callers that need to branch on it.
type CheckError struct {
	Category Category      `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *CheckError) WithContext(key string, value any) *CheckError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CheckError.
func New(category Category, message string) *CheckError {
	return &CheckError{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new CheckError that wraps an existing error.
func Wrap(err error, category Category, message string) *CheckError {
	return &CheckError{
		Category: category,
		Message:  message,
		Cause:    err,
	}
}
