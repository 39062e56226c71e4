package vm

import "unsafe"

// InstanceHandle is an opaque reference to a module instance, passed through
// to InitFunc untouched. In practice it is a wazero api.Module, but this
// layer never inspects it.
type InstanceHandle any

// CloneFunc produces a freshly allocated, independent copy of a host
// environment. It is invoked once per instantiation, always on the master
// pointer. It must always return a valid pointer; this layer cannot detect
// a misbehaving clone.
type CloneFunc func(env unsafe.Pointer) unsafe.Pointer

// DropFunc releases a host environment pointer, either the master or a
// clone. Calling it twice on the same pointer is undefined; the caller must
// guarantee at most one invocation per pointer. It must be a no-op on nil.
type DropFunc func(env unsafe.Pointer)

// InitFunc finishes setting up a cloned host environment once its instance
// is fully constructed, e.g. to capture a callable back-reference into the
// instance. It is invoked at most once per instance, only on clones, never
// on the master pointer.
type InitFunc func(env unsafe.Pointer, instance InstanceHandle)
