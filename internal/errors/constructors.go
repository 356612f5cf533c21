package errors

import "fmt"

// Convenience functions for common error patterns

func BookRootNotFound(path string) *CheckError {
	return New(CategoryLocate, fmt.Sprintf("Book source directory not found at %s", path)).
		WithContext("path", path)
}

func SummaryNotFound(path string) *CheckError {
	return New(CategorySummary, fmt.Sprintf("SUMMARY.md not found at %s", path)).
		WithContext("path", path)
}

func ConfigReadError(path string, cause error) *CheckError {
	return Wrap(cause, CategoryConfig, "failed to read config file").
		WithContext("path", path)
}

func ConfigParseError(path string, cause error) *CheckError {
	return Wrap(cause, CategoryConfig, "failed to parse config file").
		WithContext("path", path)
}
