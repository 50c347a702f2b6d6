// Package logger owns the process-wide slog logger. Until Setup succeeds every
// record is discarded, so library code may call L() unconditionally.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aalvaropc/chromix/internal/buildinfo"
)

const (
	// Dir is relative to the workspace root.
	Dir      = ".chromix/logs"
	FileName = "chromix.log"

	// DefaultMaxBytes is the size at which Setup rotates the log to
	// chromix.log.1 before opening it.
	DefaultMaxBytes int64 = 5 << 20
)

type Config struct {
	Root  string
	Debug bool

	// MaxBytes <= 0 uses DefaultMaxBytes.
	MaxBytes int64
}

type state struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = state{log: discard()}
)

// Setup opens <root>/.chromix/logs/chromix.log in append mode and installs a
// JSON handler on it. The returned cleanup closes the file and restores the
// discard logger.
func Setup(cfg Config) (func() error, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	dir := filepath.Join(filepath.Clean(root), filepath.FromSlash(Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(state{log: discard()})
		return nil, err
	}

	path := filepath.Join(dir, FileName)
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := rotate(path, maxBytes); err != nil {
		swap(state{log: discard()})
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(state{log: discard()})
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug)).With("version", buildinfo.Version)
	swap(state{log: l, file: f, path: path})

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		return swap(state{log: discard()})
	}, nil
}

// swap installs next and closes the file of the state it replaces.
func swap(next state) error {
	mu.Lock()
	prev := cur
	cur = next
	mu.Unlock()

	if prev.file != nil && prev.file != next.file {
		return prev.file.Close()
	}
	return nil
}

// rotate moves path to path.1 once it reaches maxBytes. One old generation
// is kept.
func rotate(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() < maxBytes {
		return nil
	}
	return os.Rename(path, path+".1")
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// Path is the active log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
