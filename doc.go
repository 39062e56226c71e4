// Package wasmembed is the embedding boundary of a WebAssembly execution
// engine: it assembles a concrete compilation/execution backend from a
// declarative configuration, and it manages the identity and lifetime of
// values exported out of an instantiated module.
//
// # Architecture Overview
//
// The library is organized into a small set of packages with distinct
// responsibilities:
//
//	wasmembed/       Root package with the Engine capability interfaces
//	├── engine/      Backend configuration, capability set, engine factory
//	├── export/      Export value model and host environment lifecycle
//	├── vm/          Low-level export descriptors shared with the engine core
//	└── errors/      Structured errors and the process-wide last-error slot
//
// # Engine Construction
//
// An embedder builds a Configuration, then asks the factory for an engine
// handle:
//
//	cfg := engine.NewConfig()
//	cfg.SetExecBackend(engine.ExecJIT)
//
//	eng, err := engine.Build(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err) // also recorded in errors.Last()
//	}
//	defer eng.Close(ctx)
//
// Backend availability is decided by the build (and, for external code
// generators, by init-time registration); selecting a backend that is not
// compiled in fails with a structured error rather than panicking.
//
// # Host Environments
//
// A host-implemented function export may carry opaque, embedder-owned state.
// The export/ package tracks the master copy of that state, produces an
// independent clone for every instance that imports the function, and
// releases the master exactly once when the last export referencing it is
// dropped. See export.FunctionMetadata.
//
// # Thread Safety
//
// Engine handles and function metadata are safe to share across goroutines.
// Both are reference counted; the final release runs exactly once even when
// the last two owners release concurrently.
package wasmembed
