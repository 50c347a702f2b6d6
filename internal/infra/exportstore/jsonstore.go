package exportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
)

const defaultExportsDir = "exports"

type JSONStore struct {
	rootDir        string
	exportsDirName string
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: exports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ExportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		exportsDirName: dir,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.ExportStore   = (*JSONStore)(nil)
	_ ports.ExportCatalog = (*JSONStore)(nil)
)

// SaveArtifact writes a to <exports>/<timestamp>_<slug>.json and returns its id.
// A numeric suffix is added when the name is already taken.
func (s *JSONStore) SaveArtifact(a domain.PaletteArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "exportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	slug := slugify(a.Name)
	if slug == "" {
		slug = slugify(string(a.Kind))
	}
	if slug == "" {
		slug = "palette"
	}

	base := fmt.Sprintf("%s_%s", a.CreatedAt.Format("20060102T150405Z"), slug)
	id := base
	for n := 2; fileExists(filepath.Join(dir, id+".json")); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	a.ID = id
	path := filepath.Join(dir, id+".json")

	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "exportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "exportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "exportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, a)
	}

	return id, nil
}

// LoadArtifact reads a previously saved artifact by id.
func (s *JSONStore) LoadArtifact(id string) (domain.PaletteArtifact, error) {
	path := filepath.Join(s.dir(), strings.TrimSuffix(id, ".json")+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.PaletteArtifact{}, &domain.OpError{
			Op:   "exportstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var a domain.PaletteArtifact
	if err := json.Unmarshal(b, &a); err != nil {
		return domain.PaletteArtifact{}, &domain.OpError{
			Op:   "exportstore.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return a, nil
}

// ListArtifacts returns the ids of saved artifacts, oldest first.
func (s *JSONStore) ListArtifacts() ([]string, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "exportstore.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ids := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.exportsDirName)
}

func (s *JSONStore) appendIndex(dir, id string, a domain.PaletteArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Kind      string    `json:"kind"`
		Name      string    `json:"name"`
		Swatches  int       `json:"swatches"`
		CreatedAt time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      id + ".json",
		Kind:      string(a.Kind),
		Name:      a.Name,
		Swatches:  len(a.Swatches),
		CreatedAt: a.CreatedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
