package world

import (
	"github.com/rowanlovejoy/bounding-box/internal/components"
	"github.com/rowanlovejoy/bounding-box/internal/engine"
	"github.com/rowanlovejoy/bounding-box/internal/physics"
	"github.com/rowanlovejoy/bounding-box/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Step advances the world by one fixed tick. In Menu and Win nothing moves;
// the frame is re-published so the renderer still has something to draw.
func (w *World) Step(in Input) {
	if w.mode == ModeMenu || w.mode == ModeWin {
		w.publish()
		return
	}

	w.tick++
	dt := w.DeltaTime()
	player := w.Player
	debug := w.mode == ModeDebug

	// Input and jump
	wasRising := player.JumpPhase() == components.JumpRising
	player.UpdateLook(in.LookX, in.LookY)
	for _, intent := range in.Intents(debug) {
		player.ApplyIntent(intent)
	}
	player.UpdateJump()
	if !wasRising && player.JumpPhase() == components.JumpRising {
		w.OnJump.Invoke()
	}

	// Integrate; the player is first in the scene
	w.Scene.Tick(dt)

	// Gravity lands in next tick's integration
	if !debug {
		player.AddVelocity(rl.Vector3{Y: -w.cfg.Gravity})
	}

	contacts := w.resolveCollisions()

	wasGrounded := player.Grounded()
	player.SetGrounded(contacts > 0)
	if contacts == 0 {
		w.standingOn = uuid.Nil
	}
	if !wasGrounded && player.Grounded() {
		w.OnLand.Invoke()
	}

	if w.Player.Position.Y <= w.killHeight {
		w.Respawn()
	}

	if w.goal != nil && w.standingOn == w.goal.ID && !debug {
		w.log.Info("goal reached", "tick", w.tick, "id", w.goal.ID)
		w.SetMode(ModeWin)
		w.OnWin.Invoke()
	}

	w.publish()
}

// resolveCollisions pushes the character out of every box it overlaps, one
// axis per box, and returns how many top surfaces it is resting on.
func (w *World) resolveCollisions() int {
	player := w.Player
	radius := player.Radius()
	size := rl.Vector3{X: 2 * radius, Y: 2 * radius, Z: 2 * radius}
	contacts := 0

	for _, e := range w.Scene.Entities {
		b := e.Base()
		if b.Kind == engine.KindCharacter {
			continue
		}

		// Skip boxes the sphere's bounding cube cannot reach
		center := player.SphereCenter()
		box := physics.Box{Position: b.Position, Extent: b.Extent}
		if !physics.NewBoxFromCenter(center, size).Intersects(box) {
			continue
		}

		c := physics.Detect(center, radius, box)
		if !c.Hit {
			continue
		}

		if !c.Resolvable() {
			w.log.Debug("unresolvable collision", "tick", w.tick, "entity", b.Name, "id", b.ID)
			continue
		}

		player.Position = rl.Vector3Add(player.Position, c.PushOut(radius))

		if c.Direction == physics.DirectionNegY {
			contacts++
			w.standingOn = b.ID
		}
	}

	return contacts
}

func (w *World) publish() {
	w.frame = render.Build(w.tick, w.Player, w.Scene.Entities, w.cfg.Aspect)
	w.hasFrame = true
}
