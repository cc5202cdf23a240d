package world

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rowanlovejoy/bounding-box/internal/components"
	"github.com/rowanlovejoy/bounding-box/internal/engine"
	"github.com/rowanlovejoy/bounding-box/internal/physics"
	"github.com/rowanlovejoy/bounding-box/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Mode is the top-level game state.
type Mode int

const (
	ModeActive Mode = iota
	ModeMenu
	ModeWin
	ModeDebug
)

func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "Active"
	case ModeMenu:
		return "Menu"
	case ModeWin:
		return "Win"
	case ModeDebug:
		return "Debug"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Config holds the world tunables. Gravity is a downward displacement added
// to the character every tick.
type Config struct {
	Gravity   float32
	TickRate  int
	Seed      int64 // 0 seeds from the clock
	Aspect    float32
	Character components.CharacterConfig
	Logger    *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Gravity:   0.05,
		TickRate:  60,
		Aspect:    16.0 / 9.0,
		Character: components.DefaultCharacterConfig(),
	}
}

// World owns every entity and runs the fixed per-tick step.
type World struct {
	Scene     *engine.Scene
	Player    *components.Character
	Platforms []*components.Platform

	OnJump    engine.Event
	OnLand    engine.Event
	OnRespawn engine.EventWithArg[rl.Vector3]
	OnWin     engine.Event

	cfg        Config
	log        *slog.Logger
	layout     Layout
	mode       Mode
	spawn      rl.Vector3
	killHeight float32
	goal       *components.Platform
	standingOn uuid.UUID

	tick     uint64
	frame    render.Frame
	hasFrame bool
}

// New builds a world from a layout. The character is added to the scene
// first so it always ticks before the platforms.
func New(layout Layout, cfg Config) (*World, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Aspect <= 0 {
		cfg.Aspect = 16.0 / 9.0
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		Scene:      engine.NewScene("Level"),
		cfg:        cfg,
		log:        logger,
		layout:     layout,
		spawn:      vec3(layout.Spawn),
		killHeight: layout.KillHeight,
	}

	w.Player = components.NewCharacter(w.spawn, cfg.Character)
	w.Scene.AddEntity(w.Player)

	for i, def := range layout.Platforms {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("Platform_%d", i)
		}

		p := components.NewPlatform(name, vec3(def.Position), vec3(def.Size), def.Oscillate, rng)
		p.SetDrawable(nil, vec3(def.Offset), scaleOrOne(def.Scale))

		w.Platforms = append(w.Platforms, p)
		w.Scene.AddEntity(p)
	}

	if layout.Goal != "" {
		w.goal, _ = w.Scene.FindByName(layout.Goal).(*components.Platform)
	}

	w.log.Info("world created",
		"platforms", len(w.Platforms),
		"goal", layout.Goal,
		"seed", seed,
	)
	return w, nil
}

// AttachModels loads each platform's model through load and attaches it as
// the platform's drawable handle. Paths are loaded once and shared. A failed
// load is logged and leaves the handle nil; the platform keeps colliding.
func (w *World) AttachModels(load func(path string) (any, error)) int {
	cache := make(map[string]any)
	failed := make(map[string]bool)
	loaded := 0

	for i, def := range w.layout.Platforms {
		if def.Model == "" || failed[def.Model] {
			continue
		}

		handle, ok := cache[def.Model]
		if !ok {
			h, err := load(def.Model)
			if err != nil {
				w.log.Warn("model load failed", "path", def.Model, "error", err)
				failed[def.Model] = true
				continue
			}
			cache[def.Model] = h
			handle = h
		}

		w.Platforms[i].Drawable.Handle = handle
		loaded++
	}
	return loaded
}

// Respawn moves the character to the spawn point. Accumulated velocity is
// left alone.
func (w *World) Respawn() {
	w.Player.Position = w.spawn
	w.OnRespawn.Invoke(w.spawn)
	w.log.Info("respawn", "tick", w.tick, "id", w.Player.ID, "position", w.spawn)
}

// Reset stops the character, respawns it and returns to active play.
func (w *World) Reset() {
	w.Player.Stop()
	w.standingOn = uuid.Nil
	w.Respawn()
	w.SetMode(ModeActive)
}

func (w *World) Mode() Mode {
	return w.mode
}

func (w *World) SetMode(m Mode) {
	if m == w.mode {
		return
	}
	w.log.Debug("mode change", "from", w.mode, "to", m)
	w.mode = m
}

// SetAspect updates the projection aspect ratio, e.g. after a resize.
func (w *World) SetAspect(aspect float32) {
	if aspect > 0 {
		w.cfg.Aspect = aspect
	}
}

func (w *World) Spawn() rl.Vector3 {
	return w.spawn
}

func (w *World) KillHeight() float32 {
	return w.killHeight
}

// Goal returns the goal platform, or nil when the layout has none.
func (w *World) Goal() *components.Platform {
	return w.goal
}

// StandingOn returns the body under the character after the last step, or
// nil when airborne.
func (w *World) StandingOn() *engine.Body {
	if e := w.Scene.ByID(w.standingOn); e != nil {
		return e.Base()
	}
	return nil
}

// Tick is the number of simulated steps so far.
func (w *World) Tick() uint64 {
	return w.tick
}

// TickRate is the number of steps per simulated second.
func (w *World) TickRate() int {
	return w.cfg.TickRate
}

// DeltaTime is the fixed step length in seconds.
func (w *World) DeltaTime() float32 {
	return 1 / float32(w.cfg.TickRate)
}

// Frame returns the last published frame. ok is false until the first Step.
func (w *World) Frame() (render.Frame, bool) {
	return w.frame, w.hasFrame
}

// Layout returns the layout the world was built from.
func (w *World) Layout() Layout {
	return w.layout
}

// Boxes returns the collision box of every platform in scene order.
func (w *World) Boxes() []physics.Box {
	platforms := w.Scene.FindByKind(engine.KindPlatform)
	boxes := make([]physics.Box, 0, len(platforms))
	for _, e := range platforms {
		b := e.Base()
		boxes = append(boxes, physics.Box{Position: b.Position, Extent: b.Extent})
	}
	return boxes
}

// GroundProbe casts a ray straight down from the character's sphere center
// and reports the distance to the nearest surface below it.
func (w *World) GroundProbe(maxDistance float32) (physics.RayHit, bool) {
	down := rl.Vector3{Y: -1}
	return physics.Raycast(w.Player.SphereCenter(), down, w.Boxes(), maxDistance)
}
