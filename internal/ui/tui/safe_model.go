package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a panic in Update the app goes back to the home screen.
type safeModel struct {
	m   model
	log *slog.Logger

	panics int
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next model
		cmd  tea.Cmd
	)

	if r := s.guard("tui.update", func() {
		inner, c := s.m.Update(msg)
		next, cmd = unwrap(inner, s.m), c
	}); r != nil {
		s.panics++
		s.m.scr = screenHome
		s.m.loading = false
		s.m.input.Blur()
		s.m.toast = panicToast
		return s, nil
	}

	s.m = next
	return s, cmd
}

func (s safeModel) View() string {
	var out string
	if r := s.guard("tui.view", func() { out = s.m.View() }); r != nil {
		return panicToast
	}
	return out
}

// guard runs fn and logs any panic with the current screen and stack.
func (s safeModel) guard(where string, fn func()) (recovered any) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
			s.log.Error("panic.recovered",
				"where", where,
				"screen", int(s.m.scr),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
	return nil
}

// unwrap accepts a model returned either bare or already wrapped.
func unwrap(tm tea.Model, fallback model) model {
	switch v := tm.(type) {
	case model:
		return v
	case safeModel:
		return v.m
	default:
		return fallback
	}
}

var _ tea.Model = safeModel{}
