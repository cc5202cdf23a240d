package game

import (
	"log/slog"
	"time"

	"github.com/rowanlovejoy/bounding-box/internal/audio"
	"github.com/rowanlovejoy/bounding-box/internal/timestep"
	"github.com/rowanlovejoy/bounding-box/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World        *world.World
	Keys         KeyMap
	ShowOverlay  bool
	Muted        bool
	MaxFrameRate int32

	log      *slog.Logger
	renderer *Renderer
	audio    *audio.Manager
	acc      *timestep.Accumulator
	counter  *timestep.Counter
	look     lookAccumulator
	last     time.Time

	fps int
	ups int
}

func New(w *world.World, log *slog.Logger) *Game {
	return &Game{
		World:        w,
		Keys:         DefaultKeys,
		MaxFrameRate: 144,
		log:          log,
		renderer:     NewRenderer(log),
		acc:          timestep.NewAccumulator(w.TickRate()),
	}
}

func (g *Game) Run(width, height int32, title string) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.MaxFrameRate)
	rl.SetExitKey(rl.KeyNull)
	rl.DisableCursor()

	// Shader and models need the GL context
	g.renderer.Initialize()
	defer g.renderer.Unload()

	loaded := g.World.AttachModels(g.renderer.LoadModel)
	g.log.Info("models attached",
		"loaded", loaded,
		"meshes", g.renderer.Cached(),
		"platforms", len(g.World.Platforms),
	)

	if !g.Muted {
		g.audio = audio.Init()
		if g.audio == nil {
			g.log.Warn("audio device unavailable, running silent")
		} else {
			g.log.Info("audio ready", "cues", g.audio.Loaded())
		}
		defer g.audio.Close()
		g.bindAudio()
		defer g.unbindAudio()
	}

	initRayguiStyle()

	g.last = time.Now()
	g.counter = timestep.NewCounter(g.last)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	now := time.Now()
	elapsed := now.Sub(g.last)
	g.last = now

	g.handleKeys()

	if h := rl.GetScreenHeight(); h > 0 {
		g.World.SetAspect(float32(rl.GetScreenWidth()) / float32(h))
	}

	if rl.IsCursorHidden() {
		g.look.Add(rl.GetMouseDelta())
	}

	steps := g.acc.Advance(elapsed)
	for range steps {
		g.World.Step(readInput(g.Keys, rl.IsKeyDown, g.look.Take()))
	}

	p := g.World.Player
	g.audio.SetListener(p.Position, p.Front(), p.Up())

	g.counter.Frame()
	g.counter.Updates(steps)
	if fps, ups, ok := g.counter.Sample(now); ok {
		g.fps, g.ups = fps, ups
		g.log.Debug("frame rate", "fps", fps, "updates", ups)
	}
}

// bindAudio plays a cue for each world event.
func (g *Game) bindAudio() {
	w := g.World
	w.OnJump.AddListener(func() {
		g.audio.Play(audio.CueJump, w.Player.SphereCenter(), false)
	})
	w.OnLand.AddListener(func() {
		g.audio.Play(audio.CueLand, w.Player.SphereCenter(), true)
	})
	w.OnRespawn.AddListener(func(spawn rl.Vector3) {
		g.audio.Play(audio.CueRespawn, spawn, false)
	})
	w.OnWin.AddListener(func() {
		g.audio.Play(audio.CueWin, w.Player.Position, false)
	})
}

// unbindAudio drops the cue listeners before the device closes.
func (g *Game) unbindAudio() {
	w := g.World
	w.OnJump.RemoveAllListeners()
	w.OnLand.RemoveAllListeners()
	w.OnRespawn.RemoveAllListeners()
	w.OnWin.RemoveAllListeners()
}

func (g *Game) handleKeys() {
	w := g.World

	if rl.IsKeyPressed(rl.KeyEscape) {
		switch w.Mode() {
		case world.ModeMenu:
			w.SetMode(world.ModeActive)
		case world.ModeActive, world.ModeDebug:
			w.SetMode(world.ModeMenu)
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.toggleFlight()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.ShowOverlay = !g.ShowOverlay
	}
	if rl.IsKeyPressed(rl.KeyR) {
		w.Reset()
	}

	// The cursor is free while a menu or the overlay wants the mouse
	wantCursor := w.Mode() == world.ModeMenu || w.Mode() == world.ModeWin || g.ShowOverlay
	if wantCursor && rl.IsCursorHidden() {
		rl.EnableCursor()
	} else if !wantCursor && !rl.IsCursorHidden() {
		rl.DisableCursor()
	}
}

func (g *Game) toggleFlight() {
	switch g.World.Mode() {
	case world.ModeDebug:
		g.World.SetMode(world.ModeActive)
	case world.ModeActive:
		g.World.SetMode(world.ModeDebug)
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	if f, ok := g.World.Frame(); ok {
		rl.BeginMode3D(g.World.Player.Camera())
		g.renderer.Draw(f, g.World.Layout().Goal)
		rl.EndMode3D()
	}

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("Esc pause, F1 free flight, F3 debug, R respawn", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	switch g.World.Mode() {
	case world.ModeMenu:
		g.drawBanner("Paused", rl.LightGray)
	case world.ModeWin:
		g.drawBanner("You made it! Press R to play again", rl.Gold)
	}

	if g.ShowOverlay {
		g.drawOverlay()
	}
}

func (g *Game) drawBanner(text string, color rl.Color) {
	const size = 40
	width := rl.MeasureText(text, size)
	x := (int32(rl.GetScreenWidth()) - width) / 2
	y := int32(rl.GetScreenHeight())/2 - size/2
	rl.DrawText(text, x, y, size, color)
}
