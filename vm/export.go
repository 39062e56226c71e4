package vm

import (
	"unsafe"

	"github.com/tetratelabs/wazero/api"
)

// Kind identifies which variant of the export union a value is.
type Kind uint8

const (
	KindFunction Kind = iota
	KindTable
	KindMemory
	KindGlobal
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindTable:
		return "table"
	case KindMemory:
		return "memory"
	case KindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Export is the closed union of low-level export descriptors. Exactly four
// types implement it: Function, Table, Memory, Global.
type Export interface {
	Kind() Kind
	isExport()
}

// RefType is the element type of a table.
type RefType uint8

const (
	RefTypeFuncref RefType = iota
	RefTypeExternref
)

// Limits describes the declared size bounds of a table or memory.
type Limits struct {
	Min    uint32
	Max    uint32
	HasMax bool
}

// Function is the callable descriptor of an exported function.
//
// A wasm-defined export carries Fn, the live callable of the producing
// instance. A host-implemented function carries Callable, the host
// trampoline, and Env, the per-instance environment pointer installed at
// instantiation time (nil until then, and always nil for functions without
// state).
type Function struct {
	Module  string
	Name    string
	Params  []api.ValueType
	Results []api.ValueType

	Fn       api.Function
	Callable api.GoModuleFunction
	Env      unsafe.Pointer
}

func (Function) Kind() Kind { return KindFunction }
func (Function) isExport()  {}

// Table is the descriptor of an exported table. Element access is the
// engine core's concern; only the declared shape crosses this boundary.
type Table struct {
	ElemType RefType
	Limits   Limits
}

func (Table) Kind() Kind { return KindTable }
func (Table) isExport()  {}

// Memory is the descriptor of an exported linear memory. Mem is the live
// memory of the producing instance when one exists.
type Memory struct {
	Limits Limits
	Shared bool
	Mem    api.Memory
}

func (Memory) Kind() Kind { return KindMemory }
func (Memory) isExport()  {}

// Global is the descriptor of an exported global. G is the live global of
// the producing instance when one exists; Value is the raw bit pattern
// otherwise.
type Global struct {
	Type    api.ValueType
	Mutable bool
	Value   uint64
	G       api.Global
}

func (Global) Kind() Kind { return KindGlobal }
func (Global) isExport()  {}
