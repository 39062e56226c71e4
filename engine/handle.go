package engine

import (
	"context"
	"sync/atomic"

	"github.com/tetratelabs/wazero"

	wasmembed "github.com/wippyai/wasm-embed"
)

// Handle is a shared engine. It is immutable after construction and safe to
// use from any goroutine. Ownership is reference counted: Retain adds an
// owner, Close drops one, and the final Close releases the backing runtime
// exactly once, even when the last two owners close concurrently.
type Handle struct {
	runtime  wazero.Runtime
	codegen  CodegenBackend
	exec     ExecBackend
	headless bool

	refs   atomic.Int64
	closed atomic.Bool
}

var _ wasmembed.Engine = (*Handle)(nil)

func newHandle(r wazero.Runtime, codegen CodegenBackend, exec ExecBackend, headless bool) *Handle {
	h := &Handle{
		runtime:  r,
		codegen:  codegen,
		exec:     exec,
		headless: headless,
	}
	h.refs.Add(1)
	return h
}

// Retain adds an owner. Each Retain must be balanced by exactly one Close.
func (h *Handle) Retain() *Handle {
	h.refs.Add(1)
	return h
}

// Close drops one owner. The final Close closes the backing runtime and
// returns its result; earlier closes return nil. Closing more times than
// retained is undefined.
func (h *Handle) Close(ctx context.Context) error {
	if h.refs.Add(-1) != 0 {
		return nil
	}
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	return h.runtime.Close(ctx)
}

// Closed reports whether the last owner has closed the handle.
func (h *Handle) Closed() bool {
	return h.closed.Load()
}

// Headless reports whether this engine performs no code generation and can
// only load pre-compiled artifacts.
func (h *Handle) Headless() bool {
	return h.headless
}

// Codegen returns the active code-generation backend. ok is false for
// headless engines, which have none regardless of what was configured.
func (h *Handle) Codegen() (_ CodegenBackend, ok bool) {
	if h.headless {
		return 0, false
	}
	return h.codegen, true
}

// Exec returns the execution backend this engine was built with.
func (h *Handle) Exec() ExecBackend {
	return h.exec
}

// Compile compiles a module binary with this engine.
func (h *Handle) Compile(ctx context.Context, binary []byte) (wasmembed.CompiledModule, error) {
	cm, err := h.runtime.CompileModule(ctx, binary)
	if err != nil {
		return nil, err
	}
	return cm, nil
}

// Runtime exposes the backing wazero runtime to the instantiation machinery
// built on top of this library.
func (h *Handle) Runtime() wazero.Runtime {
	return h.runtime
}
