package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig  Phase = "config"  // configuration assembly
	PhaseBuild   Phase = "build"   // engine construction
	PhaseHost    Phase = "host"    // host function registration
	PhaseConvert Phase = "convert" // export representation conversion
)

// Kind categorizes the error
type Kind string

const (
	KindBackendUnavailable Kind = "backend_unavailable"
	KindInvalidInput       Kind = "invalid_input"
	KindCacheSetup         Kind = "cache_setup"
)

// BackendClass distinguishes the two independent backend selections of a
// configuration.
type BackendClass string

const (
	BackendCodegen   BackendClass = "codegen"
	BackendExecution BackendClass = "execution"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Backend BackendClass
	Name    string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// BackendUnavailable creates an error for a backend selection that is not
// compiled into this build. The message names the missing backend so an
// embedder reading the last-error slot can diagnose the configuration.
func BackendUnavailable(class BackendClass, name string) *Error {
	return &Error{
		Phase:   PhaseBuild,
		Kind:    KindBackendUnavailable,
		Backend: class,
		Name:    name,
		Detail:  fmt.Sprintf("engine was not compiled with the %q %s backend", name, class),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// CacheSetup wraps a failure to open the compiled-artifact cache
func CacheSetup(dir string, cause error) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindCacheSetup,
		Detail: fmt.Sprintf("open artifact cache at %q", dir),
		Cause:  cause,
	}
}
