package tools

import "fmt"

// TextResult wraps a successful report.
func TextResult(text string) *Result {
	return &Result{Status: ResultSuccess, Text: text}
}

// ErrorResult wraps a user-facing failure. message must carry the full
// "Error: ..." text shown to the caller.
func ErrorResult(message string) *Result {
	return &Result{Status: ResultError, Text: message}
}

// ErrorResultf formats a user-facing failure, prefixing the "Error: " marker.
func ErrorResultf(format string, args ...any) *Result {
	return ErrorResult("Error: " + fmt.Sprintf(format, args...))
}
