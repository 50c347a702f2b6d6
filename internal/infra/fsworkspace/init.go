package fsworkspace

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

const templatesRoot = "templates"

// workspaceDirs are created even when no template file lands in them.
var workspaceDirs = []string{
	"palettes",
	"exports",
	filepath.Join(".chromix", "logs"),
}

const gitignoreHeader = "# chromix"

var gitignoreEntries = []string{"exports/", ".chromix/"}

// Initializer lays out a new workspace: config, starter palettes, and the
// exports and log directories.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range workspaceDirs {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if _, err := writeTemplates(root, force); err != nil {
		return &domain.OpError{Op: "fsworkspace.templates", Kind: domain.KindExecution, Path: root, Err: err}
	}
	return nil
}

// writeTemplates copies the embedded starter files under root and returns the
// workspace-relative paths it wrote. Existing files survive unless force.
func writeTemplates(root string, force bool) ([]string, error) {
	var written []string

	err := fs.WalkDir(templatesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel := strings.TrimPrefix(p, templatesRoot+"/")
		dst := filepath.Join(root, filepath.FromSlash(rel))
		if !force && exists(dst) {
			return nil
		}

		b, err := fs.ReadFile(templatesFS, path.Clean(p))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return err
		}

		written = append(written, rel)
		return nil
	})
	return written, err
}

func ensureGitignore(root string) error {
	p := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	merged, changed := mergeGitignore(string(b))
	if !changed {
		return nil
	}
	return os.WriteFile(p, []byte(merged), 0o644)
}

// mergeGitignore appends the chromix block, or the entries it lacks, to an
// existing .gitignore body.
func mergeGitignore(existing string) (string, bool) {
	present := make(map[string]bool)
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			present[t] = true
		}
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return existing, false
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}
	return out.String(), true
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
