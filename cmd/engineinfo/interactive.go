package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-embed/engine"
	embederrors "github.com/wippyai/wasm-embed/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	availableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type pickerState int

const (
	statePickCodegen pickerState = iota
	statePickExec
	stateCacheDir
	stateShowResult
)

type pickerModel struct {
	caps     engine.Capabilities
	codegens []engine.CodegenBackend
	execs    []engine.ExecBackend
	cacheDir textinput.Model

	state    pickerState
	cursor   int
	codegen  engine.CodegenBackend
	exec     engine.ExecBackend
	result   string
	buildErr error
}

func newPickerModel() pickerModel {
	ti := textinput.New()
	ti.Placeholder = "artifact cache directory (empty for in-memory)"
	ti.CharLimit = 256

	return pickerModel{
		caps:     engine.Compiled(),
		codegens: []engine.CodegenBackend{engine.CodegenBaseline, engine.CodegenOptimizing, engine.CodegenLLVM},
		execs:    []engine.ExecBackend{engine.ExecJIT, engine.ExecNative, engine.ExecObjectFile},
		cacheDir: ti,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		if m.state != stateCacheDir || keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "up", "k":
		if m.state == statePickCodegen || m.state == statePickExec {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	case "down", "j":
		if m.state == statePickCodegen && m.cursor < len(m.codegens)-1 {
			m.cursor++
			return m, nil
		}
		if m.state == statePickExec && m.cursor < len(m.execs)-1 {
			m.cursor++
			return m, nil
		}
	case "enter":
		return m.advance()
	}

	if m.state == stateCacheDir {
		var cmd tea.Cmd
		m.cacheDir, cmd = m.cacheDir.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m pickerModel) advance() (tea.Model, tea.Cmd) {
	switch m.state {
	case statePickCodegen:
		m.codegen = m.codegens[m.cursor]
		m.state = statePickExec
		m.cursor = 0
	case statePickExec:
		m.exec = m.execs[m.cursor]
		if m.exec == engine.ExecNative || m.exec == engine.ExecObjectFile {
			m.state = stateCacheDir
			m.cacheDir.Focus()
			return m, textinput.Blink
		}
		return m.build()
	case stateCacheDir:
		m.cacheDir.Blur()
		return m.build()
	case stateShowResult:
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) build() (tea.Model, tea.Cmd) {
	ctx := context.Background()

	cfg := engine.NewConfig()
	cfg.SetCodegenBackend(m.codegen)
	cfg.SetExecBackend(m.exec)
	cfg.CacheDir = m.cacheDir.Value()

	h, err := engine.Build(ctx, cfg)
	if err != nil {
		m.buildErr = err
		embederrors.TakeLast() // slot mirrors err; drained for the next attempt
	} else {
		defer h.Close(ctx)
		if cg, ok := h.Codegen(); ok {
			m.result = fmt.Sprintf("engine built: exec=%s codegen=%s", h.Exec(), cg)
		} else {
			m.result = fmt.Sprintf("engine built: exec=%s headless", h.Exec())
		}
	}
	m.state = stateShowResult
	return m, nil
}

func (m pickerModel) View() string {
	s := titleStyle.Render("wasm-embed engine picker") + "\n\n"
	s += helpStyle.Render("compiled in: "+m.caps.String()) + "\n\n"

	switch m.state {
	case statePickCodegen:
		s += "Select codegen backend:\n"
		for i, b := range m.codegens {
			s += m.renderChoice(i, b.String(), m.caps.Has(capabilityOfCodegen(b))) + "\n"
		}
		s += "\n" + helpStyle.Render("↑/↓ move · enter select · q quit")
	case statePickExec:
		s += "codegen: " + m.codegen.String() + "\n\nSelect execution backend:\n"
		for i, b := range m.execs {
			s += m.renderChoice(i, b.String(), m.caps.Has(capabilityOfExec(b))) + "\n"
		}
		s += "\n" + helpStyle.Render("↑/↓ move · enter select · q quit")
	case stateCacheDir:
		s += fmt.Sprintf("codegen: %s\nexec:    %s\n\n", m.codegen, m.exec)
		s += m.cacheDir.View() + "\n\n"
		s += helpStyle.Render("enter build · ctrl+c quit")
	case stateShowResult:
		if m.buildErr != nil {
			s += errorStyle.Render(m.buildErr.Error()) + "\n\n"
		} else {
			s += resultStyle.Render(m.result) + "\n\n"
		}
		s += helpStyle.Render("enter/q exit")
	}
	return s + "\n"
}

func (m pickerModel) renderChoice(i int, name string, available bool) string {
	var label string
	if available {
		label = availableStyle.Render(name)
	} else {
		label = missingStyle.Render(name + " (not compiled in)")
	}
	if i == m.cursor {
		return selectedStyle.Render(" > ") + label
	}
	return "   " + label
}

func capabilityOfCodegen(b engine.CodegenBackend) engine.Capabilities {
	switch b {
	case engine.CodegenBaseline:
		return engine.CapCodegenBaseline
	case engine.CodegenOptimizing:
		return engine.CapCodegenOptimizing
	default:
		return engine.CapCodegenLLVM
	}
}

func capabilityOfExec(b engine.ExecBackend) engine.Capabilities {
	switch b {
	case engine.ExecJIT:
		return engine.CapExecJIT
	case engine.ExecNative:
		return engine.CapExecNative
	default:
		return engine.CapExecObjectFile
	}
}

func runInteractive() error {
	p := tea.NewProgram(newPickerModel())
	_, err := p.Run()
	return err
}
