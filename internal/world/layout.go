package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoPlatforms = errors.New("layout has no platforms")
	ErrInvalidSize = errors.New("platform size must be positive on every axis")
	ErrUnknownGoal = errors.New("goal names no platform")
)

const PlatformModel = "media/platform/platform.obj"

// --- JSON types ---

type Layout struct {
	Spawn      [3]float32    `json:"spawn"`
	KillHeight float32       `json:"killHeight"`
	Goal       string        `json:"goal,omitempty"`
	Platforms  []PlatformDef `json:"platforms"`
}

type PlatformDef struct {
	Name      string     `json:"name"`
	Position  [3]float32 `json:"position"`
	Size      [3]float32 `json:"size"`
	Oscillate bool       `json:"oscillate"`
	Offset    [3]float32 `json:"offset,omitempty"`
	Scale     [3]float32 `json:"scale,omitempty"`
	Model     string     `json:"model,omitempty"`
}

// DefaultLayout is the built-in level: a wide static start pad, seven
// bobbing stepping stones and a wide static goal pad.
func DefaultLayout() Layout {
	step := func(name string, x, y, z float32) PlatformDef {
		return PlatformDef{
			Name:      name,
			Position:  [3]float32{x, y, z},
			Size:      [3]float32{2, 1, 2},
			Oscillate: true,
			Scale:     [3]float32{1, 1, 1},
			Model:     PlatformModel,
		}
	}

	return Layout{
		Spawn:      [3]float32{1, 1.5, 1},
		KillHeight: -10,
		Goal:       "Goal",
		Platforms: []PlatformDef{
			{
				Name:   "Start",
				Size:   [3]float32{4, 1, 4},
				Offset: [3]float32{1, 0, 1},
				Scale:  [3]float32{2, 1, 2},
				Model:  PlatformModel,
			},
			step("Platform_1", 0, 0, -5.5),
			step("Platform_2", 0, 1.5, -10),
			step("Platform_3", 6.5, -1, -10),
			step("Platform_4", 12.5, -5, -5),
			step("Platform_5", 17.5, -4, -5),
			step("Platform_6", 17.5, -2.5, -9),
			step("Platform_7", 22, -1, -8.5),
			{
				Name:     "Goal",
				Position: [3]float32{30, -4.5, -8.5},
				Size:     [3]float32{5, 1, 5},
				Offset:   [3]float32{1.75, 0, 1.75},
				Scale:    [3]float32{3, 1, 3},
				Model:    PlatformModel,
			},
		},
	}
}

// Validate checks the layout can be turned into a world.
func (l Layout) Validate() error {
	if len(l.Platforms) == 0 {
		return ErrNoPlatforms
	}

	goalFound := l.Goal == ""
	for i, p := range l.Platforms {
		if p.Size[0] <= 0 || p.Size[1] <= 0 || p.Size[2] <= 0 {
			return fmt.Errorf("platform %d (%q): %w", i, p.Name, ErrInvalidSize)
		}
		if p.Name == l.Goal {
			goalFound = true
		}
	}
	if !goalFound {
		return fmt.Errorf("goal %q: %w", l.Goal, ErrUnknownGoal)
	}
	return nil
}

// --- Loading ---

func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}

	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("validate layout %s: %w", path, err)
	}
	return l, nil
}

// --- Saving ---

func SaveLayout(path string, l Layout) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// scaleOrOne defaults an unset scale to unit scale.
func scaleOrOne(a [3]float32) rl.Vector3 {
	if a == [3]float32{} {
		return rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return vec3(a)
}
