package wasmembed

import "context"

// CompiledModule is executable code produced by an Engine.
type CompiledModule interface {
	Name() string
	Close(ctx context.Context) error
}

// Engine drives the compilation and execution of WebAssembly modules.
//
// The engine/ package constructs values satisfying this interface; the
// compilation and instantiation machinery built on top of this library
// consumes them. A headless engine performs no code generation and can only
// load pre-compiled artifacts.
type Engine interface {
	Compile(ctx context.Context, binary []byte) (CompiledModule, error)
	Headless() bool
	Close(ctx context.Context) error
}
