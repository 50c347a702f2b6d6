package workspacefinder

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

// ConfigFileName marks the root of a chromix workspace.
const ConfigFileName = "chromix.yaml"

// Finder walks up from a directory until it meets a chromix.yaml.
type Finder struct {
	marker string
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func NewFinder() *Finder {
	return &Finder{marker: ConfigFileName}
}

// FindRoot returns the closest directory at or above startDir holding the
// workspace config. A file path starts the search at its directory.
func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for dir := range ancestors(abs) {
		if isFile(filepath.Join(dir, f.marker)) {
			return dir, nil
		}
	}

	return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: abs, Err: domain.ErrNotFound}
}

// ancestors yields dir and each of its parents up to the filesystem root.
func ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		cur := filepath.Clean(dir)
		for {
			if !yield(cur) {
				return
			}
			parent := filepath.Dir(cur)
			if parent == cur {
				return
			}
			cur = parent
		}
	}
}

// isFile ignores a directory that happens to be called chromix.yaml.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
