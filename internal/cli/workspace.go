package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/infra/exportstore"
	"github.com/aalvaropc/chromix/internal/infra/palettefile"
	"github.com/aalvaropc/chromix/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	palettes *palettefile.Loader
	store    *exportstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		palettes: palettefile.NewLoader(palettefile.WithPalettesDir(cfg.Paths.PalettesDir)),
		store:    exportstore.NewJSONStore(root, cfg, exportstore.WithIndex(true)),
	}, nil
}

// optionalWorkspace is for commands that work without a workspace. When no
// flag is given and none is found, it returns nil and the default config.
func optionalWorkspace(workspaceFlag string) (*workspaceCtx, domain.Config, error) {
	if strings.TrimSpace(workspaceFlag) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, domain.DefaultConfig(), nil
		}
		if _, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr != nil {
			return nil, domain.DefaultConfig(), nil
		}
	}

	ws, err := loadWorkspace(workspaceFlag)
	if err != nil {
		return nil, domain.DefaultConfig(), err
	}
	return ws, ws.cfg, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `chromix init`): %w", wd, err)
	}
	return root, nil
}

func resolvePalettePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("palette is required")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	palettesDir := filepath.Join(ws.root, ws.cfg.Paths.PalettesDir)

	// "brand.yaml" or "web.toml": a file under the palettes dir.
	if hasPaletteExt(in) {
		p := filepath.Join(palettesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// "brand": try every supported extension.
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		p := filepath.Join(palettesDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by palette "name" field.
	refs, err := ws.palettes.ListPalettes(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_palette",
		Kind: domain.KindNotFound,
		Path: palettesDir,
		Err:  fmt.Errorf("palette %q not found", in),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasPaletteExt(s string) bool {
	return palettefile.IsPaletteFile(s)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
