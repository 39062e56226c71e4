package engine

import (
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
)

// Capabilities is the set of backends compiled into this build, one bit per
// backend. The set is plain data: factory validation is ordinary runtime
// control flow over it, not conditional compilation.
type Capabilities uint16

const (
	CapCodegenBaseline Capabilities = 1 << iota
	CapCodegenOptimizing
	CapCodegenLLVM
	CapExecJIT
	CapExecNative
	CapExecObjectFile
)

// Has reports whether every capability in want is present.
func (c Capabilities) Has(want Capabilities) bool {
	return c&want == want
}

// HasCodegen reports whether any code-generation backend is present.
func (c Capabilities) HasCodegen() bool {
	return c&(CapCodegenBaseline|CapCodegenOptimizing|CapCodegenLLVM) != 0
}

func (c Capabilities) String() string {
	names := []struct {
		cap  Capabilities
		name string
	}{
		{CapCodegenBaseline, "codegen:baseline"},
		{CapCodegenOptimizing, "codegen:optimizing"},
		{CapCodegenLLVM, "codegen:llvm"},
		{CapExecJIT, "exec:jit"},
		{CapExecNative, "exec:native"},
		{CapExecObjectFile, "exec:object-file"},
	}
	var parts []string
	for _, n := range names {
		if c.Has(n.cap) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// CodegenProvider constructs the runtime configuration of one
// code-generation backend.
type CodegenProvider func() wazero.RuntimeConfig

var (
	providerMu sync.RWMutex
	providers  = map[CodegenBackend]CodegenProvider{}
)

// RegisterCodegen makes a code-generation backend available to the factory.
// The in-tree backends register themselves on supported platforms; external
// (e.g. cgo-backed) generators call this from their package init. The
// capability set is derived from the registry once, on first use, so
// registration after the first Build or Compiled call is not observed.
func RegisterCodegen(b CodegenBackend, p CodegenProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providers[b] = p
}

func lookupCodegen(b CodegenBackend) (CodegenProvider, bool) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	p, ok := providers[b]
	return p, ok
}

var (
	compiledOnce sync.Once
	compiled     Capabilities
)

// Compiled returns the capability set of this build. It is computed once,
// from the platform's execution backends and the codegen registry, and is
// immutable thereafter.
func Compiled() Capabilities {
	compiledOnce.Do(func() {
		compiled = platformExec
		providerMu.RLock()
		defer providerMu.RUnlock()
		for b := range providers {
			compiled |= b.capability()
		}
	})
	return compiled
}
