// Package errors provides the structured error types of the embedding
// boundary and the process-wide last-error slot.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category):
//
//	err := errors.BackendUnavailable(errors.BackendCodegen, "llvm")
//	// [build] backend_unavailable: engine was not compiled with the "llvm" codegen backend
//
// All errors implement the standard error interface and support
// errors.Is/As; two *Error values match when Phase and Kind agree.
//
// # Last-Error Slot
//
// Embedders that consume this library through an error-code style boundary
// cannot receive a Go error value directly. Every engine construction
// failure is therefore also recorded in a single process-wide slot:
//
//	if eng, err := engine.Build(ctx, cfg); err != nil {
//	    msg := errors.TakeLast() // same error, retrieved by the C shim
//	}
//
// The slot holds at most one error, is empty at process start, and is
// overwritten (never appended to) on each failure.
package errors
