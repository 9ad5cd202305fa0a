// Package poolerrors provides structured errors for the object pool packages,
// carrying a category, key-value details and the call stack at creation.
//
// # Overview
//
// Errors produced by the pool itself (invalid configuration, ambiguous hook
// declarations, unreadable config files) are *Error values. Errors raised by
// a pooled object's own lifecycle hooks are never wrapped: the pool hands them
// back exactly as the hook returned them.
//
// # Basic Usage
//
//	err := poolerrors.New(poolerrors.ErrorTypeValidation, "precache count must not be negative").
//	    WithDetail("precache_count", n)
//
//	if err := yaml.Unmarshal(data, &file); err != nil {
//	    return poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "failed to parse pool config").
//	        WithDetail("path", path)
//	}
//
// # Thread Safety
//
// Error instances are not thread-safe for modification. Add details before
// sharing an error across goroutines.
package poolerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of an error.
type ErrorType string

const (
	// ErrorTypeValidation represents invalid pool settings
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfig represents configuration and declaration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeFile represents file operation errors
	ErrorTypeFile ErrorType = "file"
)

// Error represents a structured error with context.
//
// Fields:
//   - Type: Categorizes the error
//   - Message: Human-readable error description
//   - Cause: The underlying error that caused this error
//   - Details: Key-value pairs providing additional context
//   - Stack: Call stack at the point of error creation
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack.
type StackFrame struct {
	Function string // Fully qualified function name
	File     string // Source file path
	Line     int    // Line number in source file
}

// Error implements the error interface, returning the error type, message and
// cause (if present).
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error. Calls can be chained.
//
// Example:
//
//	err := poolerrors.New(poolerrors.ErrorTypeConfig, "ambiguous hook").
//	    WithDetail("type", "*frame").
//	    WithDetail("hook", "pre-get")
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Detail returns the detail stored under key.
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.Details[key]
	return v, ok
}

// New creates a new error with the given type and message, capturing the call
// stack at the point of creation.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error, preserving it as the cause. If the error is
// already an *Error, its stack trace is preserved. Returns nil if err is nil.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return poolerrors.Wrap(err, poolerrors.ErrorTypeFile, "failed to read pool config").
//	        WithDetail("path", path)
//	}
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if any error in err's chain is an *Error of the given type.
//
// Example:
//
//	if poolerrors.IsType(err, poolerrors.ErrorTypeValidation) {
//	    // fix the settings and retry construction
//	}
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == errType {
			return true
		}
		err = e.Cause
	}
	return false
}

// captureStack captures the current call stack up to maxFrames deep,
// skipping the specified number of frames from the top.
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
