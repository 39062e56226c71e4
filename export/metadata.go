package export

import (
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/wasm-embed/vm"
)

// FunctionMetadata is the master registration of one host-implemented
// function's environment. It owns the original env pointer supplied by the
// embedder and the flat record of operations over it.
//
// The metadata is shared, reference counted, by every Export that wraps the
// same host function. It has exactly two states: registered (master present,
// refs >= 1) and released (master freed); the transition is monotonic and
// happens exactly once, when the count reaches zero.
//
// All fields are set at construction and never mutated, so the metadata is
// safe to use from any goroutine; the embedder guarantees the same for the
// env and its operations.
type FunctionMetadata struct {
	env   unsafe.Pointer
	clone vm.CloneFunc
	drop  vm.DropFunc
	init  vm.InitFunc

	refs     atomic.Int64
	released atomic.Bool
}

// NewFunctionMetadata registers a host environment with its clone and drop
// operations and an optional initializer (init may be nil). The returned
// metadata starts with a reference count of one, owned by the first Export
// that wraps it.
//
// A nil env is passed through rather than rejected: drop receives nil on
// release and must treat it as a no-op, per the DropFunc contract. This
// keeps registration usable for embedders whose environment is attached
// later through other means.
func NewFunctionMetadata(env unsafe.Pointer, clone vm.CloneFunc, drop vm.DropFunc, init vm.InitFunc) *FunctionMetadata {
	m := &FunctionMetadata{
		env:   env,
		clone: clone,
		drop:  drop,
		init:  init,
	}
	m.refs.Add(1)
	return m
}

// Retain adds an owner. Each Retain must be balanced by exactly one
// Release.
func (m *FunctionMetadata) Retain() *FunctionMetadata {
	m.refs.Add(1)
	return m
}

// Release drops one owner. When the last owner releases - even if the last
// two release concurrently - the master env is dropped exactly once and the
// metadata transitions to released. Releasing more times than retained is
// undefined.
func (m *FunctionMetadata) Release() {
	if m.refs.Add(-1) != 0 {
		return
	}
	// Atomic decrement-and-check above decides the last owner; the guard
	// makes the finalizer single-shot even if a misbehaving caller races
	// an extra Release past zero.
	if !m.released.CompareAndSwap(false, true) {
		return
	}
	if m.env != nil {
		m.drop(m.env)
	}
}

// Released reports whether the master env has been dropped.
func (m *FunctionMetadata) Released() bool {
	return m.released.Load()
}

// CloneForInstance produces an independent copy of the master environment
// for one instantiation. The returned pointer is owned by the instance that
// requested it and must be released by that instance's teardown via
// DropEnv. The clone operation never fails from this layer's point of view;
// a clone that returns an invalid pointer is an embedder contract
// violation.
func (m *FunctionMetadata) CloneForInstance() unsafe.Pointer {
	return m.clone(m.env)
}

// Initialize runs the registered initializer on a cloned environment after
// its instance is fully constructed. It must be called at most once per
// instance and never with the master pointer. Without an initializer it is
// a no-op.
func (m *FunctionMetadata) Initialize(env unsafe.Pointer, instance vm.InstanceHandle) {
	if m.init == nil {
		return
	}
	m.init(env, instance)
}

// DropEnv releases a cloned environment. Instance teardown paths call this
// for each clone they hold; the master is never passed here - it is freed
// by the final Release.
func (m *FunctionMetadata) DropEnv(env unsafe.Pointer) {
	m.drop(env)
}

// NewHostFunction wraps a host callable descriptor together with a fresh
// environment registration into an exportable Function.
func NewHostFunction(desc vm.Function, env unsafe.Pointer, clone vm.CloneFunc, drop vm.DropFunc, init vm.InitFunc) Function {
	return Function{
		VM:       desc,
		Metadata: NewFunctionMetadata(env, clone, drop, init),
	}
}
