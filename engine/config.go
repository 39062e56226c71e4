package engine

// CodegenBackend selects a code-generation strategy.
type CodegenBackend uint8

const (
	// CodegenBaseline generates unoptimized code in a single pass. Fast
	// compilation, slower execution.
	CodegenBaseline CodegenBackend = iota

	// CodegenOptimizing runs the optimizing compiler. Slower compilation,
	// faster execution.
	CodegenOptimizing

	// CodegenLLVM generates code through an external LLVM binding. Not
	// built in-tree; see RegisterCodegen.
	CodegenLLVM
)

func (b CodegenBackend) String() string {
	switch b {
	case CodegenBaseline:
		return "baseline"
	case CodegenOptimizing:
		return "optimizing"
	case CodegenLLVM:
		return "llvm"
	default:
		return "unknown"
	}
}

// ParseCodegenBackend maps a backend name to its value.
func ParseCodegenBackend(s string) (CodegenBackend, bool) {
	switch s {
	case "baseline":
		return CodegenBaseline, true
	case "optimizing":
		return CodegenOptimizing, true
	case "llvm":
		return CodegenLLVM, true
	default:
		return 0, false
	}
}

func (b CodegenBackend) capability() Capabilities {
	switch b {
	case CodegenBaseline:
		return CapCodegenBaseline
	case CodegenOptimizing:
		return CapCodegenOptimizing
	case CodegenLLVM:
		return CapCodegenLLVM
	default:
		return 0
	}
}

// ExecBackend selects an execution strategy.
type ExecBackend uint8

const (
	// ExecJIT keeps generated machine code in memory.
	ExecJIT ExecBackend = iota

	// ExecNative persists generated code in a shared artifact cache so it
	// can be reused across engines and processes.
	ExecNative

	// ExecObjectFile loads pre-compiled artifacts only. Always headless:
	// no code generation is performed by engines built with it.
	ExecObjectFile
)

func (b ExecBackend) String() string {
	switch b {
	case ExecJIT:
		return "jit"
	case ExecNative:
		return "native"
	case ExecObjectFile:
		return "object-file"
	default:
		return "unknown"
	}
}

// ParseExecBackend maps a backend name to its value.
func ParseExecBackend(s string) (ExecBackend, bool) {
	switch s {
	case "jit":
		return ExecJIT, true
	case "native":
		return ExecNative, true
	case "object-file":
		return ExecObjectFile, true
	default:
		return 0, false
	}
}

func (b ExecBackend) capability() Capabilities {
	switch b {
	case ExecJIT:
		return CapExecJIT
	case ExecNative:
		return CapExecNative
	case ExecObjectFile:
		return CapExecObjectFile
	default:
		return 0
	}
}

// Config is a plain-value engine configuration. It owns no resources and is
// consumed by Build; the zero value selects the zero backends, which may or
// may not be compiled in - use NewConfig for build-dependent defaults.
type Config struct {
	// Codegen is the code-generation backend. Ignored when the build has
	// no codegen capability at all, and by ExecObjectFile.
	Codegen CodegenBackend

	// Exec is the execution backend.
	Exec ExecBackend

	// MemoryLimitPages caps linear memory per instance in 64KiB pages.
	// 0 means the runtime default.
	MemoryLimitPages uint32

	// EnableThreads enables the threads proposal (shared memory, atomics).
	EnableThreads bool

	// CloseOnContextDone makes in-flight executions observe context
	// cancellation.
	CloseOnContextDone bool

	// CacheDir is the compiled-artifact cache directory used by the
	// native and object-file execution backends. Empty selects an
	// in-memory cache for native and a fresh empty cache for object-file.
	CacheDir string
}

// NewConfig returns a configuration selecting the first compiled-in backend
// of each class. A build with no compiled-in execution backend cannot exist
// (object-file is always present); a build with no codegen backend yields a
// config whose codegen selection is ignored.
func NewConfig() Config {
	caps := Compiled()
	var cfg Config
	for _, b := range []CodegenBackend{CodegenBaseline, CodegenOptimizing, CodegenLLVM} {
		if caps.Has(b.capability()) {
			cfg.Codegen = b
			break
		}
	}
	for _, b := range []ExecBackend{ExecJIT, ExecNative, ExecObjectFile} {
		if caps.Has(b.capability()) {
			cfg.Exec = b
			break
		}
	}
	return cfg
}

// SetCodegenBackend records a code-generation preference. Availability is
// not validated here; Build performs validation.
func (c *Config) SetCodegenBackend(b CodegenBackend) {
	c.Codegen = b
}

// SetExecBackend records an execution preference. Availability is not
// validated here; Build performs validation.
func (c *Config) SetExecBackend(b ExecBackend) {
	c.Exec = b
}
