package world

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	l := DefaultLayout()

	if err := l.Validate(); err != nil {
		t.Fatalf("Default layout should validate: %v", err)
	}
	if len(l.Platforms) != 9 {
		t.Errorf("Expected 9 platforms, got %d", len(l.Platforms))
	}
	if l.Spawn != [3]float32{1, 1.5, 1} || l.KillHeight != -10 {
		t.Errorf("Unexpected spawn %v / kill height %v", l.Spawn, l.KillHeight)
	}

	oscillating := 0
	for _, p := range l.Platforms {
		if p.Oscillate {
			oscillating++
		}
	}
	if oscillating != 7 {
		t.Errorf("Expected 7 bobbing platforms, got %d", oscillating)
	}
	if l.Platforms[0].Oscillate || l.Platforms[8].Oscillate {
		t.Error("Start and goal pads must be static")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   error
	}{
		{"empty", Layout{}, ErrNoPlatforms},
		{
			"zero size",
			Layout{Platforms: []PlatformDef{{Name: "Flat", Size: [3]float32{2, 0, 2}}}},
			ErrInvalidSize,
		},
		{
			"negative size",
			Layout{Platforms: []PlatformDef{{Name: "Neg", Size: [3]float32{-1, 1, 1}}}},
			ErrInvalidSize,
		},
		{
			"unknown goal",
			Layout{Goal: "Nowhere", Platforms: []PlatformDef{{Name: "A", Size: [3]float32{1, 1, 1}}}},
			ErrUnknownGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.layout.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	want := DefaultLayout()

	if err := SaveLayout(path, want); err != nil {
		t.Fatalf("SaveLayout: %v", err)
	}
	got, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layout changed across save/load:\n%+v\n%+v", got, want)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a wrapped not-exist error, got %v", err)
	}
}

func TestLoadLayoutBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLayout(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestLoadLayoutValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"spawn":[0,0,0],"killHeight":-10,"platforms":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLayout(path); !errors.Is(err, ErrNoPlatforms) {
		t.Errorf("Expected ErrNoPlatforms, got %v", err)
	}
}
