// Package errors provides structured error handling for the Swoop
// motion library.
//
// Library code never fails hard on bad choreography input; anomalies
// are reported through the global [ErrorHandler] and execution degrades
// to a documented fallback. Applications install their own handler with
// [SetHandler] to route diagnostics into their logging.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInput indicates an invalid choreography input, such as a nil
	// source or target reference.
	KindInput
	// KindEasing indicates an unrecognized easing identifier.
	KindEasing
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindEasing:
		return "easing"
	default:
		return "unknown"
	}
}

// SwoopError represents a structured error in the Swoop library.
type SwoopError struct {
	// Op is the operation that failed (e.g., "choreo.Trigger").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SwoopError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SwoopError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "player.step").
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

// ErrorHandler receives errors reported by the Swoop library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SwoopError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
