// Package engine selects and assembles a concrete compilation/execution
// backend from a declarative configuration.
//
// # Backends
//
// Two independent selections make up a configuration:
//
//	Codegen backend   - how wasm bytecode becomes machine code
//	                    (baseline, optimizing, llvm)
//	Execution backend - how generated code is loaded and run
//	                    (jit, native, object-file)
//
// Not every backend is available in every build: the compiled-in capability
// set is fixed at process start and exposed as plain data via Compiled().
// The factory validates a configuration against it and reports a structured
// error for anything missing; it never terminates the process.
//
//	cfg := engine.NewConfig()          // build-dependent defaults
//	cfg.SetCodegenBackend(engine.CodegenOptimizing)
//	cfg.SetExecBackend(engine.ExecNative)
//
//	eng, err := engine.Build(ctx, cfg)
//
// The object-file execution backend is always constructed headless: it
// loads pre-compiled artifacts only and silently ignores any configured
// codegen backend. This is an interoperability policy, not an oversight -
// object-file engines exist precisely so that hosts without a code
// generator can still run ahead-of-time compiled modules.
//
// # Engine Handles
//
// Build returns a shared, reference-counted Handle wrapping the backing
// wazero runtime. A handle is immutable after construction and safe to use
// from any goroutine; Retain/Close manage shared ownership and the final
// Close releases the runtime exactly once.
//
// # External Code Generators
//
// The in-tree codegen backends are wazero's compilers, available on amd64
// and arm64. A cgo-backed code generator (e.g. an LLVM binding) plugs in by
// calling RegisterCodegen from its package init; the capability set is
// derived from the registry.
package engine
