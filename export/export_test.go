package export

import (
	"testing"
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-embed/vm"
)

func TestRoundTripTable(t *testing.T) {
	orig := Table{VM: vm.Table{
		ElemType: vm.RefTypeFuncref,
		Limits:   vm.Limits{Min: 2, Max: 64, HasMax: true},
	}}

	back := FromVM(ToVM(orig))

	got, ok := back.(Table)
	if !ok {
		t.Fatalf("round trip changed variant: %T", back)
	}
	if got.VM != orig.VM {
		t.Fatalf("round trip changed descriptor: %+v != %+v", got.VM, orig.VM)
	}
}

func TestRoundTripMemory(t *testing.T) {
	orig := Memory{VM: vm.Memory{
		Limits: vm.Limits{Min: 1, Max: 16, HasMax: true},
		Shared: true,
	}}

	back := FromVM(ToVM(orig))

	got, ok := back.(Memory)
	if !ok {
		t.Fatalf("round trip changed variant: %T", back)
	}
	if got.VM != orig.VM {
		t.Fatalf("round trip changed descriptor: %+v != %+v", got.VM, orig.VM)
	}
}

func TestRoundTripGlobal(t *testing.T) {
	orig := Global{VM: vm.Global{
		Type:    api.ValueTypeF64,
		Mutable: true,
		Value:   0x4049_0fdb_0000_0000,
	}}

	back := FromVM(ToVM(orig))

	got, ok := back.(Global)
	if !ok {
		t.Fatalf("round trip changed variant: %T", back)
	}
	if got.VM != orig.VM {
		t.Fatalf("round trip changed descriptor: %+v != %+v", got.VM, orig.VM)
	}
}

func TestFunctionConversionDropsMetadata(t *testing.T) {
	env := unsafe.Pointer(new(int32))
	meta := NewFunctionMetadata(env,
		func(p unsafe.Pointer) unsafe.Pointer { return p },
		func(unsafe.Pointer) {},
		nil,
	)
	orig := Function{
		VM: vm.Function{
			Module:  "host",
			Name:    "notify",
			Params:  []api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
			Results: []api.ValueType{api.ValueTypeI32},
			Env:     env,
		},
		Metadata: meta,
	}

	low := ToVM(orig)
	lowFn, ok := low.(vm.Function)
	if !ok {
		t.Fatalf("ToVM changed variant: %T", low)
	}
	if lowFn.Module != "host" || lowFn.Name != "notify" || lowFn.Env != env {
		t.Fatalf("ToVM lost callable descriptor: %+v", lowFn)
	}

	back := FromVM(low)
	fn, ok := back.(Function)
	if !ok {
		t.Fatalf("FromVM changed variant: %T", back)
	}
	if fn.Metadata != nil {
		t.Fatal("FromVM must not fabricate metadata")
	}
	if fn.VM.Name != orig.VM.Name || len(fn.VM.Params) != 2 || len(fn.VM.Results) != 1 {
		t.Fatalf("FromVM lost callable descriptor: %+v", fn.VM)
	}

	orig.Release()
}

func TestKindDispatch(t *testing.T) {
	cases := []struct {
		e    Export
		want vm.Kind
	}{
		{Function{}, vm.KindFunction},
		{Table{}, vm.KindTable},
		{Memory{}, vm.KindMemory},
		{Global{}, vm.KindGlobal},
	}
	for _, c := range cases {
		if c.e.Kind() != c.want {
			t.Errorf("%T.Kind() = %v, want %v", c.e, c.e.Kind(), c.want)
		}
	}
}

func TestShareWithoutMetadata(t *testing.T) {
	f := Function{VM: vm.Function{Name: "pure"}}

	// wasm-defined functions have nothing to share or release
	g := f.Share()
	g.Release()
	f.Release()
}
