package tui

import "github.com/aalvaropc/chromix/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type palettesLoadedMsg struct {
	root string
	refs []domain.PaletteRef
	err  error
}

type paletteLoadedMsg struct {
	path    string
	palette domain.Palette
	checks  []domain.CheckResult
	err     error
}
