package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenConvert
	screenPalettes
	screenPaletteDetail
)

const (
	menuConvert  = "Convert"
	menuPalettes = "Palettes"
	menuInit     = "Init workspace"
	menuQuit     = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type paletteItem struct {
	ref     domain.PaletteRef
	relPath string
}

func (p paletteItem) Title() string       { return p.ref.Name }
func (p paletteItem) Description() string { return p.relPath }
func (p paletteItem) FilterValue() string { return p.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	input     textinput.Model
	converter *usecase.ConvertColor
	conv      *usecase.Conversion
	convErr   string

	palettes list.Model
	palette  domain.Palette
	checks   []domain.CheckResult
	loading  bool

	toast string
	width int

	cwd            string
	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{menuConvert, "Type a color in any notation and see every conversion"},
		menuItem{menuPalettes, "Browse workspace palettes and their contrast checks"},
		menuItem{menuInit, "Create chromix.yaml, palettes/ and exports/ here"},
		menuItem{menuQuit, "Exit chromix"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "chromix"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	pl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	pl.Title = "Palettes"
	pl.SetShowStatusBar(false)
	pl.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "#ff5500, rgb(0 128 255), hsl(210, 100%, 50%), teal..."
	in.CharLimit = 64
	in.Width = 48

	m := model{
		theme:     t,
		deps:      deps,
		scr:       screenHome,
		menu:      l,
		palettes:  pl,
		input:     in,
		converter: usecase.NewConvertColor(usecase.WithLogger(deps.Logger)),
	}

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
	}
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.width = w
		m.menu.SetSize(w-4, h-10)
		m.palettes.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace ready at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case palettesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.palettes.SetItems(nil)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			rel, err := filepath.Rel(msg.root, r.Path)
			if err != nil {
				rel = r.Path
			}
			items = append(items, paletteItem{ref: r, relPath: rel})
		}
		m.palettes.SetItems(items)
		if len(items) == 0 {
			m.toast = "No palettes found"
		}
		return m, nil

	case paletteLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.palette = msg.palette
		m.checks = msg.checks
		m.scr = screenPaletteDetail
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenConvert:
			return m.updateConvert(msg)
		case screenPalettes:
			return m.updatePalettes(msg)
		case screenPaletteDetail:
			switch msg.String() {
			case "esc", "b", "q":
				m.scr = screenPalettes
			}
			return m, nil
		}
	}

	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""

		switch it.title {
		case menuQuit:
			return m, tea.Quit

		case menuConvert:
			m.scr = screenConvert
			return m, m.input.Focus()

		case menuPalettes:
			if !m.workspaceFound {
				m.toast = "No workspace found (choose Init workspace first)"
				return m, nil
			}
			m.scr = screenPalettes
			m.loading = true
			return m, cmdLoadPalettes(m.workspaceRoot)

		case menuInit:
			root := m.cwd
			if root == "" {
				root = "."
			}
			return m, cmdInitWorkspaceHere(m.deps, root)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateConvert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.input.Blur()
		m.scr = screenHome
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m = m.convertInput()
	return m, cmd
}

// convertInput re-runs the conversion for the current input value.
func (m model) convertInput() model {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		m.conv = nil
		m.convErr = ""
		return m
	}

	c, err := m.converter.Execute(v)
	if err != nil {
		m.conv = nil
		m.convErr = userMessage(err)
		return m
	}
	m.conv = &c
	m.convErr = ""
	return m
}

func (m model) updatePalettes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.palettes.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.palettes, cmd = m.palettes.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil

	case "r":
		m.loading = true
		return m, cmdLoadPalettes(m.workspaceRoot)

	case "enter":
		it, ok := m.palettes.SelectedItem().(paletteItem)
		if !ok {
			return m, nil
		}
		m.loading = true
		m.toast = ""
		return m, cmdOpenPalette(m.workspaceRoot, it.ref.Path, m.deps.Logger)
	}

	var cmd tea.Cmd
	m.palettes, cmd = m.palettes.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("chromix") + "\n" +
		m.theme.Subtitle.Render("Color conversion, mixing and palettes in the terminal") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace here. Conversion still works; palettes need one.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		if m.deps.Debug {
			help += "\n" + m.theme.Help.Render("debug logging on")
		}
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + toast + "\n" + help)

	case screenConvert:
		body := m.input.View() + "\n\n"
		switch {
		case m.conv != nil:
			body += renderConversion(m.theme, *m.conv)
		case m.convErr != "":
			body += m.theme.Fail.Render(m.convErr)
		default:
			body += m.theme.Help.Render("Start typing a color.")
		}
		help := m.theme.Help.Render("type to convert • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + toast + "\n" + help)

	case screenPalettes:
		body := m.palettes.View()
		if m.loading {
			body = "Loading palettes..."
		}
		help := m.theme.Help.Render("enter open • r reload • / search • esc back")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body) + toast + "\n" + help)

	case screenPaletteDetail:
		body := renderPaletteDetail(m.theme, m.palette, m.checks, m.width-8)
		help := m.theme.Help.Render("esc/b back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + toast + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
