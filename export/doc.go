// Package export models the values an instantiated module exposes across
// the embedding boundary, and the lifetime of the opaque host state a
// host-implemented function may carry.
//
// # Export Union
//
// Export is a closed union over Function, Table, Memory and Global. Each
// variant wraps the corresponding low-level descriptor from the vm package;
// ToVM and FromVM convert between the two layers in O(1).
//
// Metadata flows one direction only. ToVM drops a Function's metadata
// (the lower layer has no use for it) and FromVM never reconstructs it:
// metadata is attached exactly once, by whoever registers the host
// function, and travels with the boundary-level Export from there.
//
// # Host Environment Lifecycle
//
// FunctionMetadata owns the master copy of a host function's environment.
// One host function export can be instantiated into many module instances;
// each instantiation clones the master, and each instance releases its own
// clone during teardown. The master itself is released exactly once, when
// the last Export sharing the metadata is dropped:
//
//	meta := export.NewFunctionMetadata(env, cloneFn, dropFn, initFn)
//	f := export.Function{VM: desc, Metadata: meta}
//
//	// exporting the same host function under a second name shares the
//	// metadata instead of re-registering
//	g := f.Share()
//
//	// at instantiation time
//	clone := meta.CloneForInstance()
//	meta.Initialize(clone, instance)
//
//	// instance teardown (owned by the instance, not by this package)
//	meta.DropEnv(clone)
//
//	f.Release()
//	g.Release() // dropFn(master) runs here, exactly once
//
// The reference count is atomic; the final release runs exactly once even
// when the last two owners release concurrently on different goroutines.
// Misuse that this package cannot detect - double-releasing a clone, a
// clone function returning an invalid pointer - is an embedder contract
// violation, documented on the vm function types rather than guarded here.
package export
