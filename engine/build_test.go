package engine

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	embederrors "github.com/wippyai/wasm-embed/errors"
)

// allCaps is every backend a default amd64/arm64 build carries. LLVM is
// deliberately absent: it has no in-tree provider.
const allCaps = CapCodegenBaseline | CapCodegenOptimizing |
	CapExecJIT | CapExecNative | CapExecObjectFile

func TestBuildCompiledInPair(t *testing.T) {
	ctx := context.Background()
	embederrors.RecordLast(nil)

	cfg := Config{Codegen: CodegenBaseline, Exec: ExecJIT}
	h, err := buildWith(ctx, cfg, allCaps)
	if err != nil {
		t.Fatalf("buildWith: %v", err)
	}
	defer h.Close(ctx)

	if h.Headless() {
		t.Fatal("jit engine with a codegen backend must not be headless")
	}
	if cg, ok := h.Codegen(); !ok || cg != CodegenBaseline {
		t.Fatalf("Codegen() = (%v, %v), want (baseline, true)", cg, ok)
	}
	if h.Exec() != ExecJIT {
		t.Fatalf("Exec() = %v, want jit", h.Exec())
	}
	if last := embederrors.Last(); last != nil {
		t.Fatalf("successful build must leave the last-error slot untouched, got %v", last)
	}
}

func TestBuildMissingCodegen(t *testing.T) {
	ctx := context.Background()
	embederrors.RecordLast(nil)

	caps := allCaps &^ CapCodegenOptimizing
	cfg := Config{Codegen: CodegenOptimizing, Exec: ExecJIT}

	h, err := buildWith(ctx, cfg, caps)
	if h != nil {
		t.Fatal("failed build must return a nil handle")
	}

	var e *embederrors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if e.Kind != embederrors.KindBackendUnavailable || e.Backend != embederrors.BackendCodegen {
		t.Fatalf("unexpected error shape: %+v", e)
	}
	if !strings.Contains(e.Error(), `"optimizing"`) {
		t.Fatalf("error must name the missing backend: %q", e.Error())
	}
	if embederrors.Last() != err {
		t.Fatal("failure must be recorded in the last-error slot")
	}
}

func TestBuildMissingExecution(t *testing.T) {
	ctx := context.Background()
	embederrors.RecordLast(nil)

	caps := allCaps &^ CapExecNative
	cfg := Config{Codegen: CodegenBaseline, Exec: ExecNative}

	_, err := buildWith(ctx, cfg, caps)
	var e *embederrors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if e.Backend != embederrors.BackendExecution || e.Name != "native" {
		t.Fatalf("unexpected error shape: %+v", e)
	}
}

func TestValidationChecksCodegenFirst(t *testing.T) {
	ctx := context.Background()

	// Both selections are missing; the codegen failure must win.
	caps := CapCodegenBaseline | CapExecJIT
	cfg := Config{Codegen: CodegenOptimizing, Exec: ExecNative}

	_, err := buildWith(ctx, cfg, caps)
	var e *embederrors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if e.Backend != embederrors.BackendCodegen {
		t.Fatalf("validation order violated: reported %v first", e.Backend)
	}
}

func TestBuildCodegenWithoutProvider(t *testing.T) {
	ctx := context.Background()
	embederrors.RecordLast(nil)

	// A capability bit with no registered provider, as when an external
	// backend advertises itself without calling RegisterCodegen. The
	// factory must fail the same way as for a missing capability.
	caps := allCaps | CapCodegenLLVM
	cfg := Config{Codegen: CodegenLLVM, Exec: ExecJIT}

	h, err := buildWith(ctx, cfg, caps)
	if h != nil {
		t.Fatal("failed build must return a nil handle")
	}

	var e *embederrors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if e.Backend != embederrors.BackendCodegen || e.Name != "llvm" {
		t.Fatalf("unexpected error shape: %+v", e)
	}
	if embederrors.Last() != err {
		t.Fatal("failure must be recorded in the last-error slot")
	}
}

func TestObjectFileIgnoresCodegen(t *testing.T) {
	ctx := context.Background()

	for _, cg := range []CodegenBackend{CodegenBaseline, CodegenOptimizing} {
		cfg := Config{Codegen: cg, Exec: ExecObjectFile}
		h, err := buildWith(ctx, cfg, allCaps)
		if err != nil {
			t.Fatalf("codegen=%v: %v", cg, err)
		}

		if !h.Headless() {
			t.Fatalf("codegen=%v: object-file engine must be headless", cg)
		}
		if _, ok := h.Codegen(); ok {
			t.Fatalf("codegen=%v: headless engine must report no active codegen", cg)
		}
		if h.Exec() != ExecObjectFile {
			t.Fatalf("codegen=%v: Exec() = %v", cg, h.Exec())
		}
		h.Close(ctx)
	}
}

func TestBuildWithoutAnyCodegenIsHeadless(t *testing.T) {
	ctx := context.Background()

	// A build carrying no code generator still runs every execution
	// backend, headless; the codegen selection is ignored entirely.
	caps := CapExecJIT | CapExecObjectFile
	cfg := Config{Codegen: CodegenLLVM, Exec: ExecJIT}

	h, err := buildWith(ctx, cfg, caps)
	if err != nil {
		t.Fatalf("buildWith: %v", err)
	}
	defer h.Close(ctx)

	if !h.Headless() {
		t.Fatal("engine without codegen capability must be headless")
	}
}

func TestBuildNativeWithCacheDir(t *testing.T) {
	ctx := context.Background()

	cfg := Config{Codegen: CodegenBaseline, Exec: ExecNative, CacheDir: t.TempDir()}
	h, err := buildWith(ctx, cfg, allCaps)
	if err != nil {
		t.Fatalf("buildWith: %v", err)
	}
	h.Close(ctx)
}

func TestBuildCacheDirUnusable(t *testing.T) {
	ctx := context.Background()
	embederrors.RecordLast(nil)

	// A regular file where the cache directory should be.
	path := filepath.Join(t.TempDir(), "cache")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Codegen: CodegenBaseline, Exec: ExecNative, CacheDir: path}
	_, err := buildWith(ctx, cfg, allCaps)

	var e *embederrors.Error
	if !stderrors.As(err, &e) || e.Kind != embederrors.KindCacheSetup {
		t.Fatalf("expected cache setup error, got %v", err)
	}
	if embederrors.Last() == nil {
		t.Fatal("cache failure must be recorded in the last-error slot")
	}
}

func TestNewDefaultEngine(t *testing.T) {
	ctx := context.Background()

	h, err := NewDefaultEngine(ctx)
	if err != nil {
		t.Fatalf("NewDefaultEngine: %v", err)
	}
	defer h.Close(ctx)

	if Compiled().HasCodegen() == h.Headless() {
		t.Fatal("default engine headlessness must follow the capability set")
	}
}
