package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryStyle  Category = "style"
	CategoryTree   Category = "tree"
	CategoryRender Category = "render"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// SugarError is a structured error with a code, a tree path and a hint.
type SugarError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (tree, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path locates the offending value inside a tree document
	// (e.g. "children[1].props.style").
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SugarError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SugarError) Unwrap() error {
	return e.Wrapped
}

// WithPath records where in a tree document the error occurred.
func (e *SugarError) WithPath(path string) *SugarError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SugarError) WithSuggestion(s string) *SugarError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *SugarError) WithDetail(d string) *SugarError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *SugarError) Wrap(err error) *SugarError {
	e.Wrapped = err
	return e
}

// New creates a SugarError from a registered error code.
func New(code string) *SugarError {
	template, ok := registry[code]
	if !ok {
		return &SugarError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SugarError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new SugarError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SugarError {
	return &SugarError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SugarError.
func FromError(err error, code string) *SugarError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SugarError); ok {
		return se
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a SugarError with the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if se, ok := err.(*SugarError); ok && se.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
