package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadModelMissingFile(t *testing.T) {
	m := NewManager()

	_, err := m.LoadModel(filepath.Join(t.TempDir(), "platform.obj"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a wrapped not-exist error, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Failed loads must not be cached, have %d", m.Len())
	}
}
