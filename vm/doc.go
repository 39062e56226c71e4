// Package vm defines the low-level export representation shared between the
// embedding boundary and the engine core.
//
// Every value an instantiated module exposes is one of four kinds:
//
//	Function - a callable, either wasm-defined or host-implemented
//	Table    - a table of reference values
//	Memory   - a linear memory
//	Global   - a single typed value
//
// The export/ package wraps these descriptors with boundary-level concerns
// (host environment metadata); this package carries only what the engine
// core needs at call and instantiation time.
//
// # Host Environments
//
// A host-implemented function may carry opaque, embedder-owned state. The
// state is type-erased at this layer: the embedder and the engine may be
// compiled independently and agree only on a flat record of function values
// (CloneFunc, DropFunc, InitFunc) operating on an unsafe.Pointer handle.
// The embedder guarantees, as a contract of registration, that the state and
// all three operations tolerate use from any goroutine.
package vm
