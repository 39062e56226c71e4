package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-embed/engine"
	embederrors "github.com/wippyai/wasm-embed/errors"
)

func main() {
	var (
		codegen     = flag.String("codegen", "", "Code-generation backend (baseline|optimizing|llvm)")
		execBackend = flag.String("exec", "", "Execution backend (jit|native|object-file)")
		cacheDir    = flag.String("cache", "", "Compiled-artifact cache directory")
		memPages    = flag.Uint("mem-pages", 0, "Memory limit per instance, in 64KiB pages")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive backend picker")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.SetLogger(logger)
		defer logger.Sync()
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*codegen, *execBackend, *cacheDir, uint32(*memPages)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// render applies a style only when stdout is a terminal.
func render(s lipgloss.Style, text string) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return s.Render(text)
	}
	return text
}

func run(codegen, execBackend, cacheDir string, memPages uint32) error {
	ctx := context.Background()

	cfg := engine.NewConfig()
	if codegen != "" {
		b, ok := engine.ParseCodegenBackend(codegen)
		if !ok {
			return fmt.Errorf("unknown codegen backend %q", codegen)
		}
		cfg.SetCodegenBackend(b)
	}
	if execBackend != "" {
		b, ok := engine.ParseExecBackend(execBackend)
		if !ok {
			return fmt.Errorf("unknown execution backend %q", execBackend)
		}
		cfg.SetExecBackend(b)
	}
	cfg.CacheDir = cacheDir
	cfg.MemoryLimitPages = memPages

	fmt.Println(render(headingStyle, "Compiled-in backends"))
	fmt.Printf("  %s\n\n", engine.Compiled())

	fmt.Println(render(headingStyle, "Configuration"))
	fmt.Printf("  codegen: %s\n  exec:    %s\n\n", cfg.Codegen, cfg.Exec)

	h, err := engine.Build(ctx, cfg)
	if err != nil {
		fmt.Printf("%s %v\n", render(failStyle, "build failed:"), err)
		// show what an error-code style caller would read back
		if last := embederrors.TakeLast(); last != nil {
			fmt.Printf("last-error slot: %v\n", last)
		}
		return err
	}
	defer h.Close(ctx)

	fmt.Println(render(okStyle, "engine built"))
	fmt.Printf("  exec:     %s\n", h.Exec())
	if cg, ok := h.Codegen(); ok {
		fmt.Printf("  codegen:  %s\n", cg)
	} else {
		fmt.Printf("  codegen:  none (headless)\n")
	}
	return nil
}
