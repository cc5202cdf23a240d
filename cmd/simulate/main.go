// Headless run of the world with scripted input, for checking tuning and
// timing without a window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/rowanlovejoy/bounding-box/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// scripts map a tick number to the input held on that tick.
var scripts = map[string]func(tick int) world.Input{
	"idle": func(int) world.Input {
		return world.Input{}
	},
	"walk": func(int) world.Input {
		return world.Input{Forward: true}
	},
	"hop": func(tick int) world.Input {
		return world.Input{Forward: true, Jump: tick%90 < 10}
	},
	"spin": func(int) world.Input {
		return world.Input{Forward: true, LookX: 5}
	},
}

type result struct {
	Script   string
	Ticks    int
	Final    [3]float32
	Grounded bool
	Mode     world.Mode
	Landings int
	Respawns int
	PerTick  time.Duration
}

func run(layout world.Layout, cfg world.Config, script string, ticks int) (result, error) {
	input, ok := scripts[script]
	if !ok {
		return result{}, fmt.Errorf("unknown script %q", script)
	}

	w, err := world.New(layout, cfg)
	if err != nil {
		return result{}, err
	}

	r := result{Script: script, Ticks: ticks}
	w.OnLand.AddListener(func() { r.Landings++ })
	w.OnRespawn.AddListener(func(rl.Vector3) { r.Respawns++ })

	start := time.Now()
	for i := 0; i < ticks; i++ {
		w.Step(input(i))
	}
	if ticks > 0 {
		r.PerTick = time.Since(start) / time.Duration(ticks)
	}

	p := w.Player.Position
	r.Final = [3]float32{p.X, p.Y, p.Z}
	r.Grounded = w.Player.Grounded()
	r.Mode = w.Mode()
	return r, nil
}

func scriptNames() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	layoutPath := flag.String("layout", "", "level layout JSON (default: built-in level)")
	script := flag.String("script", "", "input script to run (default: all)")
	ticks := flag.Int("ticks", 600, "ticks to simulate")
	seed := flag.Int64("seed", 42, "platform phase seed")
	verbose := flag.Bool("v", false, "log world events")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	layout := world.DefaultLayout()
	if *layoutPath != "" {
		var err error
		if layout, err = world.LoadLayout(*layoutPath); err != nil {
			log.Error("load layout", "error", err)
			os.Exit(1)
		}
	}

	cfg := world.DefaultConfig()
	cfg.Seed = *seed
	cfg.Logger = log

	names := scriptNames()
	if *script != "" {
		names = []string{*script}
	}

	for _, name := range names {
		r, err := run(layout, cfg, name, *ticks)
		if err != nil {
			log.Error("simulate", "script", name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("%-5s %5d ticks: pos (%7.2f %6.2f %7.2f) grounded=%-5v mode=%-6s landings=%d respawns=%d | %v/tick\n",
			r.Script, r.Ticks, r.Final[0], r.Final[1], r.Final[2], r.Grounded, r.Mode,
			r.Landings, r.Respawns, r.PerTick)
	}
}
