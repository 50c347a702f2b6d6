package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/chromix/internal/domain"
)

type stubLocator struct {
	root string
	err  error
}

func (s stubLocator) FindRoot(string) (string, error) { return s.root, s.err }

type stubInitializer struct {
	got domain.WorkspaceSpec
}

func (s *stubInitializer) Init(spec domain.WorkspaceSpec, _ bool) error {
	s.got = spec
	return nil
}

func sized(t *testing.T, deps Deps) model {
	t.Helper()
	m := newModel(deps)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

func press(t *testing.T, m model, key tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func selectMenu(t *testing.T, m model, title string) model {
	t.Helper()
	for i, it := range m.menu.Items() {
		if it.(menuItem).title == title {
			m.menu.Select(i)
			return m
		}
	}
	t.Fatalf("menu item %q not found", title)
	return m
}

func TestConvertScreen_LiveConversion(t *testing.T) {
	m := sized(t, Deps{WorkspaceLocator: stubLocator{err: errors.New("none")}})
	m = selectMenu(t, m, menuConvert)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenConvert {
		t.Fatalf("expected convert screen, got %v", m.scr)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#f00")})
	if m.conv == nil {
		t.Fatalf("expected a conversion, got error %q", m.convErr)
	}
	if m.conv.Hex != "#ff0000" || m.conv.Name != "red" {
		t.Fatalf("unexpected conversion %+v", *m.conv)
	}
	if !strings.Contains(m.View(), "hsl(0, 100%, 50%)") {
		t.Fatalf("expected hsl in view:\n%s", m.View())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	if m.conv != nil || m.convErr != "Invalid color" {
		t.Fatalf("expected invalid color, got conv=%v err=%q", m.conv, m.convErr)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenHome {
		t.Fatalf("expected home after esc, got %v", m.scr)
	}
}

func TestPalettesScreen_RequiresWorkspace(t *testing.T) {
	m := sized(t, Deps{WorkspaceLocator: stubLocator{err: errors.New("none")}})
	m = selectMenu(t, m, menuPalettes)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenHome || cmd != nil {
		t.Fatalf("expected to stay home without a workspace")
	}
	if !strings.Contains(m.toast, "No workspace") {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestPalettesLoaded_PopulatesList(t *testing.T) {
	m := sized(t, Deps{WorkspaceLocator: stubLocator{root: "/ws"}})
	m.scr = screenPalettes

	next, _ := m.Update(palettesLoadedMsg{
		root: "/ws",
		refs: []domain.PaletteRef{
			{Name: "brand", Path: "/ws/palettes/brand.yaml"},
			{Name: "web", Path: "/ws/palettes/web.toml"},
		},
	})
	m = next.(model)

	items := m.palettes.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if it := items[0].(paletteItem); it.relPath != "palettes/brand.yaml" {
		t.Fatalf("unexpected rel path %q", it.relPath)
	}
}

func TestPaletteLoaded_ShowsDetail(t *testing.T) {
	m := sized(t, Deps{WorkspaceLocator: stubLocator{root: "/ws"}})
	m.scr = screenPalettes

	next, _ := m.Update(paletteLoadedMsg{
		palette: domain.Palette{
			Name:     "brand",
			Swatches: []domain.Swatch{{Name: "ink", Hex: "#000000"}, {Name: "paper", Hex: "#ffffff"}},
		},
		checks: []domain.CheckResult{{Name: "ink/paper", Passed: true, Ratio: 21, Message: "21.00:1"}},
	})
	m = next.(model)

	if m.scr != screenPaletteDetail {
		t.Fatalf("expected detail screen, got %v", m.scr)
	}
	view := m.View()
	for _, want := range []string{"brand", "paper", "ink/paper", "1 check(s) pass"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestInitWorkspace_FromMenu(t *testing.T) {
	si := &stubInitializer{}
	m := sized(t, Deps{
		WorkspaceLocator:     stubLocator{err: errors.New("none")},
		WorkspaceInitializer: si,
	})
	m.cwd = "/tmp/here"
	m = selectMenu(t, m, menuInit)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected init command")
	}
	msg, ok := cmd().(initWorkspaceDoneMsg)
	if !ok || msg.err != nil {
		t.Fatalf("unexpected init result %+v", msg)
	}
	if si.got.Root != "/tmp/here" {
		t.Fatalf("expected init at /tmp/here, got %q", si.got.Root)
	}
}

func TestSafeModel_RecoversFromPanic(t *testing.T) {
	s := wrapSafe(newModel(Deps{}), nil)
	s.m.converter = nil
	s.m.scr = screenConvert
	s.m.input.Focus()

	// A nil converter panics once the input parses as a color.
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#f00")})
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.scr != screenHome || sm.m.toast == "" {
		t.Fatalf("expected reset to home with toast, got scr=%v toast=%q", sm.m.scr, sm.m.toast)
	}
	if sm.panics != 1 {
		t.Fatalf("expected 1 recorded panic, got %d", sm.panics)
	}
	if !strings.Contains(sm.View(), panicToast) {
		t.Fatalf("expected toast in view, got %q", sm.View())
	}
}
