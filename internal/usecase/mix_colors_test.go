package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aalvaropc/chromix/internal/domain"
)

func TestMixColors_Execute(t *testing.T) {
	store := &fakeStore{}
	art, id, err := NewMixColors(store).Execute(context.Background(), MixRequest{
		A:      "black",
		B:      "#FFF",
		Weight: 0.5,
		Save:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Result(art); got != "#808080" {
		t.Fatalf("expected #808080, got %q", got)
	}
	if id != "art-123" || len(store.saved) != 1 {
		t.Fatalf("expected artifact to be saved, got id=%q", id)
	}
	if art.Source != "#000000+#ffffff@0.5" {
		t.Fatalf("unexpected source %q", art.Source)
	}
}

func TestMixColors_WeightEndpoints(t *testing.T) {
	uc := NewMixColors(nil)

	art, _, err := uc.Execute(context.Background(), MixRequest{A: "#ff0000", B: "#0000ff", Weight: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Result(art) != "#ff0000" {
		t.Fatalf("weight 1 should return A, got %q", Result(art))
	}

	art, _, err = uc.Execute(context.Background(), MixRequest{A: "#ff0000", B: "#0000ff", Weight: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Result(art) != "#0000ff" {
		t.Fatalf("weight 0 should return B, got %q", Result(art))
	}
}

func TestMixColors_Errors(t *testing.T) {
	uc := NewMixColors(nil)
	cases := []MixRequest{
		{A: "#zzzzzz", B: "#000", Weight: 0.5},
		{A: "#000", B: "", Weight: 0.5},
		{A: "#000", B: "#fff", Weight: 1.5},
	}
	for _, req := range cases {
		if _, _, err := uc.Execute(context.Background(), req); !errors.Is(err, domain.ErrInvalidFormat) {
			t.Errorf("Execute(%+v): expected ErrInvalidFormat, got %v", req, err)
		}
	}
}

func TestResult_Empty(t *testing.T) {
	if Result(domain.PaletteArtifact{}) != "" {
		t.Fatalf("expected empty result")
	}
}
