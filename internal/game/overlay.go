package game

import (
	"fmt"

	"github.com/rowanlovejoy/bounding-box/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors, indigo on dark
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

const (
	overlayX     = 10
	overlayY     = 90
	overlayW     = 280
	overlayRowH  = 20
	overlayLabel = 110
)

// initRayguiStyle sets up the dark theme used by the debug overlay.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// overlayRows is the read-only state shown in the debug panel.
func overlayRows(w *world.World, fps, ups int) [][2]string {
	p := w.Player

	standing := "-"
	if b := w.StandingOn(); b != nil {
		standing = b.Name
	}

	ground := "-"
	if hit, ok := w.GroundProbe(50); ok {
		ground = fmt.Sprintf("%.2f", hit.Distance)
	}

	return [][2]string{
		{"Mode", w.Mode().String()},
		{"Tick", fmt.Sprintf("%d", w.Tick())},
		{"FPS / UPS", fmt.Sprintf("%d / %d", fps, ups)},
		{"Position", fmt.Sprintf("%.2f %.2f %.2f", p.Position.X, p.Position.Y, p.Position.Z)},
		{"Yaw / Pitch", fmt.Sprintf("%.1f / %.1f", p.Yaw, p.Pitch)},
		{"Grounded", fmt.Sprintf("%v", p.Grounded())},
		{"Jump", fmt.Sprintf("%s (%d)", p.JumpPhase(), p.JumpTicks())},
		{"Standing on", standing},
		{"Ground dist", ground},
	}
}

// drawOverlay draws the debug panel and applies its controls.
func (g *Game) drawOverlay() {
	w := g.World
	rows := overlayRows(w, g.fps, g.ups)

	height := float32(len(rows)*overlayRowH + 3*overlayRowH + 40)
	rl.DrawRectangleRec(rl.Rectangle{X: overlayX, Y: overlayY, Width: overlayW, Height: height}, colorBgPanel)

	y := float32(overlayY + 8)
	for _, row := range rows {
		rl.DrawText(row[0], overlayX+8, int32(y)+3, 15, colorTextMuted)
		gui.Label(rl.Rectangle{X: overlayX + overlayLabel, Y: y, Width: overlayW - overlayLabel - 8, Height: overlayRowH}, row[1])
		y += overlayRowH
	}
	y += 6

	// Free flight
	flying := w.Mode() == world.ModeDebug
	checkBounds := rl.Rectangle{X: overlayX + 8, Y: y, Width: 16, Height: 16}
	if gui.CheckBox(checkBounds, "Free flight (F1)", flying) != flying {
		g.toggleFlight()
	}
	y += overlayRowH + 4

	// Movement speed
	rl.DrawText("Speed", overlayX+8, int32(y)+3, 15, colorTextMuted)
	speed := w.Player.MovementSpeed()
	sliderBounds := rl.Rectangle{X: overlayX + overlayLabel, Y: y, Width: overlayW - overlayLabel - 50, Height: 16}
	w.Player.SetMovementSpeed(gui.Slider(sliderBounds, "", fmt.Sprintf("%.3f", speed), speed, 0, 0.2))
	y += overlayRowH + 4

	if gui.Button(rl.Rectangle{X: overlayX + 8, Y: y, Width: 100, Height: 22}, "Respawn (R)") {
		w.Reset()
	}

	stats := fmt.Sprintf("Drawn %d  Meshes %d  Cues %d", g.renderer.Drawn(), g.renderer.Cached(), g.audio.Loaded())
	rl.DrawText(stats, overlayX+overlayLabel, int32(y)+4, 15, colorTextMuted)
}
