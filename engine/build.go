package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-embed/errors"
)

// Build validates cfg against the compiled-in capability set and constructs
// an engine handle. On failure it returns a structured error, records the
// same error in the process-wide last-error slot, and returns a nil handle;
// it never terminates the process.
//
// Validation order: the codegen backend is checked first (unless the build
// carries no codegen capability at all, in which case every engine is
// headless and the selection is ignored), then the execution backend.
func Build(ctx context.Context, cfg Config) (*Handle, error) {
	return buildWith(ctx, cfg, Compiled())
}

// NewDefaultEngine builds an engine from the build-dependent default
// configuration.
func NewDefaultEngine(ctx context.Context) (*Handle, error) {
	return Build(ctx, NewConfig())
}

func buildWith(ctx context.Context, cfg Config, caps Capabilities) (*Handle, error) {
	if caps.HasCodegen() && !caps.Has(cfg.Codegen.capability()) {
		return nil, buildFailed(errors.BackendUnavailable(errors.BackendCodegen, cfg.Codegen.String()))
	}
	if !caps.Has(cfg.Exec.capability()) {
		return nil, buildFailed(errors.BackendUnavailable(errors.BackendExecution, cfg.Exec.String()))
	}

	// Resolve the cross product. Object-file execution never performs code
	// generation - a configured codegen backend is silently ignored - and a
	// build without codegen capability runs every execution backend
	// headless.
	rc := wazero.NewRuntimeConfigInterpreter()
	headless := true
	if cfg.Exec != ExecObjectFile && caps.HasCodegen() {
		provider, ok := lookupCodegen(cfg.Codegen)
		if !ok {
			return nil, buildFailed(errors.BackendUnavailable(errors.BackendCodegen, cfg.Codegen.String()))
		}
		rc = provider()
		headless = false
	}

	if cfg.MemoryLimitPages > 0 {
		rc = rc.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	if cfg.EnableThreads {
		rc = rc.WithCoreFeatures(api.CoreFeaturesV2 | experimental.CoreFeaturesThreads)
	}
	if cfg.CloseOnContextDone {
		rc = rc.WithCloseOnContextDone(true)
	}

	if cfg.Exec == ExecNative || cfg.Exec == ExecObjectFile {
		cache, err := openCache(cfg.CacheDir)
		if err != nil {
			return nil, buildFailed(err)
		}
		rc = rc.WithCompilationCache(cache)
	}

	h := newHandle(wazero.NewRuntimeWithConfig(ctx, rc), cfg.Codegen, cfg.Exec, headless)
	Logger().Debug("engine built",
		zap.String("codegen", cfg.Codegen.String()),
		zap.String("exec", cfg.Exec.String()),
		zap.Bool("headless", headless))
	return h, nil
}

func openCache(dir string) (wazero.CompilationCache, error) {
	if dir == "" {
		return wazero.NewCompilationCache(), nil
	}
	cache, err := wazero.NewCompilationCacheWithDir(dir)
	if err != nil {
		return nil, errors.CacheSetup(dir, err)
	}
	return cache, nil
}

func buildFailed(err error) error {
	errors.RecordLast(err)
	Logger().Debug("engine build failed", zap.Error(err))
	return err
}
