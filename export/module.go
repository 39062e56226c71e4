package export

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-embed/vm"
)

// FromModule wraps a live instance's exported functions and memories into
// boundary exports. Functions constructed this way are wasm-defined and
// carry no metadata.
//
// Globals are not enumerable through the instance API; pass the export
// names of any globals of interest and they are appended when present.
// Tables have no instance-level API at all and are never produced here;
// table exports enter the boundary through their declared descriptors.
func FromModule(mod api.Module, globalNames ...string) []Export {
	var out []Export

	for name, def := range mod.ExportedFunctionDefinitions() {
		out = append(out, Function{
			VM: vm.Function{
				Module:  mod.Name(),
				Name:    name,
				Params:  def.ParamTypes(),
				Results: def.ResultTypes(),
				Fn:      mod.ExportedFunction(name),
			},
		})
	}

	for name := range mod.ExportedMemoryDefinitions() {
		mem := mod.ExportedMemory(name)
		if mem == nil {
			continue
		}
		def := mem.Definition()
		max, hasMax := def.Max()
		out = append(out, Memory{
			VM: vm.Memory{
				Limits: vm.Limits{Min: def.Min(), Max: max, HasMax: hasMax},
				Mem:    mem,
			},
		})
	}

	for _, name := range globalNames {
		g := mod.ExportedGlobal(name)
		if g == nil {
			continue
		}
		_, mutable := g.(api.MutableGlobal)
		out = append(out, Global{
			VM: vm.Global{
				Type:    g.Type(),
				Mutable: mutable,
				Value:   g.Get(),
				G:       g,
			},
		})
	}

	return out
}
