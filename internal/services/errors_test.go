package services_test

import (
	"errors"
	"strings"
	"testing"

	"leadstage/internal/services"
)

func TestWrapPreservesMarker(t *testing.T) {
	inner := errors.New("boom")
	err := services.Wrap(services.ErrValidation, "board", "move lead", "unknown stage", inner)

	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected inner error preserved, got %v", err)
	}
	for _, fragment := range []string{"board", "move lead", "unknown stage"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in %q", fragment, err.Error())
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("nil marker should default to transient, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}
