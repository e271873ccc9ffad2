// Package errors provides structured error reporting for pickers.
//
// Pickers never return errors to their callers: misconfiguration degrades to
// a static column and is reported here instead, so hosts can surface it in
// logs or a debug overlay.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates picker configuration that had to be corrected.
	KindConfig
	// KindCallback indicates a failure inside a consumer callback.
	KindCallback
	// KindParsing indicates a definition or script file could not be decoded.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Configuration problems recovered by the picker.
var (
	ErrDuplicateColumn    = stderrors.New("duplicate column label")
	ErrInvalidHeight      = stderrors.New("height must be positive")
	ErrInvalidItemHeight  = stderrors.New("item height must be positive")
	ErrUncomparableOption = stderrors.New("option value is not comparable")
)

// PickerError represents a structured error reported by a picker.
type PickerError struct {
	// Op is the operation that failed (e.g., "picker.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Column is the column label, if applicable.
	Column string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PickerError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s [%s] column=%s: %v", e.Op, e.Kind, e.Column, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PickerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "picker.OnChange").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by pickers.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *PickerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
