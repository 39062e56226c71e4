package export

import (
	"github.com/wippyai/wasm-embed/vm"
)

// Export is the closed union of boundary-level export values. Exactly four
// types implement it: Function, Table, Memory, Global.
type Export interface {
	Kind() vm.Kind
	isExport()
}

// Function is an exported callable. Metadata is non-nil only for
// host-implemented functions that carry opaque state; it is nil for
// wasm-defined functions and for any Function recovered via FromVM.
type Function struct {
	VM       vm.Function
	Metadata *FunctionMetadata
}

func (Function) Kind() vm.Kind { return vm.KindFunction }
func (Function) isExport()     {}

// Share returns a copy of f that co-owns its metadata. Use this when the
// same host function is exported under multiple names: the wraps share one
// registration instead of re-registering.
func (f Function) Share() Function {
	if f.Metadata != nil {
		f.Metadata.Retain()
	}
	return f
}

// Release drops this export's ownership of its metadata, if any. The last
// release frees the master host environment.
func (f Function) Release() {
	if f.Metadata != nil {
		f.Metadata.Release()
	}
}

// Table is an exported table. Its lifetime is tied to the instance that
// produced it; the wrapper adds none of its own.
type Table struct {
	VM vm.Table
}

func (Table) Kind() vm.Kind { return vm.KindTable }
func (Table) isExport()     {}

// Memory is an exported linear memory.
type Memory struct {
	VM vm.Memory
}

func (Memory) Kind() vm.Kind { return vm.KindMemory }
func (Memory) isExport()     {}

// Global is an exported global.
type Global struct {
	VM vm.Global
}

func (Global) Kind() vm.Kind { return vm.KindGlobal }
func (Global) isExport()     {}

// ToVM converts a boundary export to its low-level representation. The
// mapping is structural and total: Table, Memory and Global map 1:1, and
// Function keeps only its callable descriptor - metadata is a boundary
// concept the lower layer never sees.
func ToVM(e Export) vm.Export {
	switch e := e.(type) {
	case Function:
		return e.VM
	case Table:
		return e.VM
	case Memory:
		return e.VM
	case Global:
		return e.VM
	default:
		// Export is a closed union; no other type implements it.
		panic("export: unknown export variant")
	}
}

// FromVM converts a low-level export to its boundary representation.
// Function variants come back with nil Metadata even if the descriptor
// originated from a host function: metadata only ever flows from
// registration to export, never back through the vm layer.
func FromVM(v vm.Export) Export {
	switch v := v.(type) {
	case vm.Function:
		return Function{VM: v}
	case vm.Table:
		return Table{VM: v}
	case vm.Memory:
		return Memory{VM: v}
	case vm.Global:
		return Global{VM: v}
	default:
		panic("export: unknown vm export variant")
	}
}
