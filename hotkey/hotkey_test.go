package hotkey

import (
	"testing"

	"golang.design/x/hotkey"
)

func TestPlatformCombo(t *testing.T) {
	mods, key := platformCombo()
	if len(mods) != 2 {
		t.Errorf("expected two modifiers, got %d", len(mods))
	}
	if key != hotkey.KeyG {
		t.Errorf("expected KeyG, got %v", key)
	}
	if comboString() == "" {
		t.Errorf("empty combo description")
	}
}

func TestStopWithoutStartIsSafe(t *testing.T) {
	r := NewRegistrar(func() {})
	r.Stop()
	r.Stop()
}
