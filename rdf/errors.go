package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedNodeType indicates a value that cannot be coerced into a term.
	ErrCodeUnsupportedNodeType ErrorCode = "UNSUPPORTED_NODE_TYPE"
	// ErrCodeInvalidContextArity indicates an operation that needs exactly one selected term.
	ErrCodeInvalidContextArity ErrorCode = "INVALID_CONTEXT_ARITY"
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeInvalidPlan indicates a malformed traversal plan.
	ErrCodeInvalidPlan ErrorCode = "INVALID_PLAN"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeUnknown is returned for errors that carry no classification.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrUnsupportedNodeType indicates a value that is neither a term, text, a number
	// nor a list of those.
	ErrUnsupportedNodeType = errors.New("rdf: unsupported node type")
	// ErrInvalidContextArity indicates the selection does not hold exactly one term.
	ErrInvalidContextArity = errors.New("rdf: operation requires exactly one term in context")
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("rdf: unsupported format")
	// ErrInvalidPlan indicates a malformed traversal plan.
	ErrInvalidPlan = errors.New("rdf: invalid plan")
)

// Code returns the error code for an error.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedNodeType):
		return ErrCodeUnsupportedNodeType
	case errors.Is(err, ErrInvalidContextArity):
		return ErrCodeInvalidContextArity
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrInvalidPlan):
		return ErrCodeInvalidPlan
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return ErrCodeParseError
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeContextCanceled
	}

	return ErrCodeUnknown
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Format name (e.g., "nquads", "term")
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if e.Statement != "" {
		msg.WriteString("\n  ")
		msg.WriteString(e.excerpt())
	}
	return msg.String()
}

// excerpt shortens the offending statement and marks the column when known.
func (e *ParseError) excerpt() string {
	const maxExcerptLen = 80
	const contextLen = 40

	if e.Column <= 0 {
		if len(e.Statement) > maxExcerptLen {
			return e.Statement[:maxExcerptLen] + "..."
		}
		return e.Statement
	}

	start := e.Column - 1
	if start > len(e.Statement) {
		start = len(e.Statement)
	}
	from := max(start-contextLen, 0)
	to := min(start+contextLen, len(e.Statement))

	excerpt := e.Statement[from:to]
	caret := start - from
	if from > 0 {
		excerpt = "..." + excerpt
		caret += 3
	}
	if to < len(e.Statement) {
		excerpt += "..."
	}
	return excerpt + "\n  " + strings.Repeat(" ", caret) + "^"
}

func (e *ParseError) Unwrap() error { return e.Err }
