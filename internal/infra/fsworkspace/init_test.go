package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/chromix/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "chromix.yaml"))
	assertFileExists(t, filepath.Join(tmp, "palettes", "example.yaml"))
	assertFileExists(t, filepath.Join(tmp, "palettes", "terminal.toml"))
	assertFileExists(t, filepath.Join(tmp, "exports"))
	assertFileExists(t, filepath.Join(tmp, ".chromix", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "chromix.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing chromix.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read chromix.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected chromix.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read chromix.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "chromix:") {
		t.Fatalf("expected chromix.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

func TestWriteTemplates_ReportsWrittenFiles(t *testing.T) {
	tmp := t.TempDir()

	got, err := writeTemplates(tmp, false)
	if err != nil {
		t.Fatalf("writeTemplates error: %v", err)
	}
	want := []string{"chromix.yaml", "palettes/example.yaml", "palettes/terminal.toml"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("written=%v, want %v", got, want)
	}

	again, err := writeTemplates(tmp, false)
	if err != nil {
		t.Fatalf("second writeTemplates error: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected nothing rewritten, got %v", again)
	}
}
