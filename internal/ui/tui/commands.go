package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/infra/palettefile"
	"github.com/aalvaropc/chromix/internal/infra/workspacefinder"
	"github.com/aalvaropc/chromix/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func paletteLoader(root string) (*palettefile.Loader, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return palettefile.NewLoader(palettefile.WithPalettesDir(cfg.Paths.PalettesDir)), nil
}

func cmdLoadPalettes(root string) tea.Cmd {
	return func() tea.Msg {
		loader, err := paletteLoader(root)
		if err != nil {
			return palettesLoadedMsg{root: root, err: err}
		}

		refs, err := loader.ListPalettes(root)
		return palettesLoadedMsg{root: root, refs: refs, err: err}
	}
}

// cmdOpenPalette loads a palette and runs its contrast checks.
func cmdOpenPalette(root, path string, log *slog.Logger) tea.Cmd {
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		p := filepath.Clean(path)

		loader, err := paletteLoader(root)
		if err != nil {
			return paletteLoadedMsg{path: p, err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pal, res, err := usecase.NewCheckPalette(loader, usecase.WithLogger(log)).Execute(ctx, p)
		if err != nil {
			log.Error("palette.open_failed", "path", p, "err", err)
			return paletteLoadedMsg{path: p, err: err}
		}
		return paletteLoadedMsg{path: p, palette: pal, checks: res}
	}
}

// checksSummary heads the check list of the palette detail view.
func checksSummary(res []domain.CheckResult) string {
	if len(res) == 0 {
		return "no contrast checks"
	}
	fail := 0
	for _, r := range res {
		if !r.Passed {
			fail++
		}
	}
	if fail == 0 {
		return fmt.Sprintf("%d check(s) pass", len(res))
	}
	return fmt.Sprintf("%d of %d check(s) fail", fail, len(res))
}
