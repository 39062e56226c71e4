//go:build amd64 || arm64

package engine

import (
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/experimental/opt"
)

// wazero's compilers are implemented for amd64 and arm64 only.
const platformExec = CapExecJIT | CapExecNative | CapExecObjectFile

func init() {
	RegisterCodegen(CodegenBaseline, wazero.NewRuntimeConfigCompiler)
	RegisterCodegen(CodegenOptimizing, opt.NewRuntimeConfigOptimizingCompiler)
}
