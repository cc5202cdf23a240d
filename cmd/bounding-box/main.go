package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rowanlovejoy/bounding-box/internal/game"
	"github.com/rowanlovejoy/bounding-box/internal/world"
)

func main() {
	layoutPath := flag.String("layout", "", "level layout JSON (default: built-in level)")
	dumpLayout := flag.String("dump-layout", "", "write the built-in level to this path and exit")
	seed := flag.Int64("seed", 0, "platform phase seed (0 = from clock)")
	freeFlight := flag.Bool("debug", false, "start in free flight")
	overlay := flag.Bool("overlay", false, "show the debug overlay")
	mute := flag.Bool("mute", false, "disable sound cues")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *dumpLayout != "" {
		if err := world.SaveLayout(*dumpLayout, world.DefaultLayout()); err != nil {
			log.Error("dump layout", "error", err)
			os.Exit(1)
		}
		log.Info("layout written", "path", *dumpLayout)
		return
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil && *layoutPath == "" {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	layout := world.DefaultLayout()
	if *layoutPath != "" {
		if layout, err = world.LoadLayout(*layoutPath); err != nil {
			log.Error("load layout", "error", err)
			os.Exit(1)
		}
	}

	cfg := world.DefaultConfig()
	cfg.Seed = *seed
	cfg.Aspect = float32(*width) / float32(*height)
	cfg.Logger = log

	w, err := world.New(layout, cfg)
	if err != nil {
		log.Error("create world", "error", err)
		os.Exit(1)
	}
	if *freeFlight {
		w.SetMode(world.ModeDebug)
	}

	g := game.New(w, log)
	g.ShowOverlay = *overlay
	g.Muted = *mute
	g.Run(int32(*width), int32(*height), "Bounding Box")
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}
