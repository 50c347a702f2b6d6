package usecase

import (
	"errors"
	"testing"
)

func TestInitWorkspace_Execute(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call %+v force=%v", fi.spec, fi.force)
	}
}

func TestInitWorkspace_EmptyRootIsCurrentDir(t *testing.T) {
	fi := &fakeInitializer{}
	_ = NewInitWorkspace(fi).Execute("  ", false)
	if fi.spec.Root != "." {
		t.Fatalf("expected root '.', got %q", fi.spec.Root)
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	err := NewInitWorkspace(&fakeInitializer{err: errBoom}).Execute(".", false)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
}
