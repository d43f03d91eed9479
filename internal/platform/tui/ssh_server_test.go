package tui

import (
	"path/filepath"
	"testing"
)

func TestDefaultHostKeyPath(t *testing.T) {
	got := defaultHostKeyPath("/home/neo")
	want := filepath.Join("/home/neo", ".glitch-defender", "host_key")
	if got != want {
		t.Errorf("defaultHostKeyPath() = %q, expected %q", got, want)
	}
}
