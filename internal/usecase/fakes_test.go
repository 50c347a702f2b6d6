package usecase

import (
	"errors"

	"github.com/aalvaropc/chromix/internal/domain"
)

type fakeStore struct {
	saved []domain.PaletteArtifact
	err   error
}

func (s *fakeStore) SaveArtifact(a domain.PaletteArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, a)
	return "art-123", nil
}

type fakePaletteLoader struct {
	palette domain.Palette
	err     error
	paths   []string
}

func (f *fakePaletteLoader) LoadPalette(path string) (domain.Palette, error) {
	f.paths = append(f.paths, path)
	return f.palette, f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

var errBoom = errors.New("boom")

func brandPalette() domain.Palette {
	return domain.Palette{
		Name: "brand",
		Swatches: []domain.Swatch{
			{Name: "ink", Hex: "#000000"},
			{Name: "paper", Hex: "#ffffff"},
			{Name: "accent", Hex: "#ff5500"},
		},
		Checks: []domain.ContrastCheck{
			{Foreground: "ink", Background: "paper", MinRatio: 7},
			{Foreground: "accent", Background: "paper", MinRatio: 4.5},
		},
	}
}

type fakeCatalog struct {
	ids       []string
	artifacts map[string]domain.PaletteArtifact
	listErr   error
	loaded    []string
}

func (c *fakeCatalog) ListArtifacts() ([]string, error) {
	return c.ids, c.listErr
}

func (c *fakeCatalog) LoadArtifact(id string) (domain.PaletteArtifact, error) {
	c.loaded = append(c.loaded, id)
	a, ok := c.artifacts[id]
	if !ok {
		return domain.PaletteArtifact{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return a, nil
}
