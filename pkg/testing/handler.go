package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/swoop/pkg/errors"
)

// ErrorRecorder is an errors.ErrorHandler that collects everything
// reported to it.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.SwoopError
	panics []*errors.PanicError
}

// HandleError records a reported error.
func (r *ErrorRecorder) HandleError(err *errors.SwoopError) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

// HandlePanic records a recovered panic.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

// Errors returns the recorded errors in report order.
func (r *ErrorRecorder) Errors() []*errors.SwoopError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.SwoopError(nil), r.errs...)
}

// Panics returns the recorded panics in report order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// CaptureErrors installs an ErrorRecorder as the global error handler
// for the duration of the test and restores the previous handler
// afterwards.
func CaptureErrors(t *testing.T) *ErrorRecorder {
	rec := &ErrorRecorder{}
	prev := errors.DefaultHandler
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}
