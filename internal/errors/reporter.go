package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"zkc/internal/ast"
	"zkc/internal/propagation"
)

// ErrorLevel represents the severity of a diagnostic.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is a structured diagnostic with an optional source span.
type CompilerError struct {
	Level   ErrorLevel
	Code    string
	Message string
	Span    *ast.Span
	Notes   []string
}

// FromPropagation converts a propagation pass error into a diagnostic.
func FromPropagation(err *propagation.Error, span *ast.Span) CompilerError {
	code := ErrorTypeMismatch
	switch err.Kind {
	case propagation.ErrorAssertionFailed:
		code = ErrorAssertionFailed
	case propagation.ErrorValueTooLarge:
		code = ErrorValueTooLarge
	case propagation.ErrorOutOfBounds:
		code = ErrorOutOfBounds
	case propagation.ErrorNonConstantExponent:
		code = ErrorNonConstantExponent
	}
	return CompilerError{
		Level:   Error,
		Code:    code,
		Message: err.Error(),
		Span:    span,
	}
}

// FormatError formats a diagnostic with Rust-like styling.
func FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	if err.Span != nil {
		result.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), err.Span))
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("  %s %s\n", noteColor("note:"), note))
	}

	return result.String()
}

func getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
