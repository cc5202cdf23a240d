package game

import (
	"github.com/rowanlovejoy/bounding-box/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyMap binds movement to raylib key codes.
type KeyMap struct {
	Forward  int32
	Backward int32
	Left     int32
	Right    int32
	Up       int32
	Down     int32
	Jump     int32
}

var DefaultKeys = KeyMap{
	Forward:  rl.KeyW,
	Backward: rl.KeyS,
	Left:     rl.KeyA,
	Right:    rl.KeyD,
	Up:       rl.KeyE,
	Down:     rl.KeyQ,
	Jump:     rl.KeySpace,
}

// readInput samples the key state into a world input. mouseDelta is in
// screen space, so Y is flipped to make moving the mouse up look up.
func readInput(keys KeyMap, isDown func(key int32) bool, mouseDelta rl.Vector2) world.Input {
	return world.Input{
		Forward:  isDown(keys.Forward),
		Backward: isDown(keys.Backward),
		Left:     isDown(keys.Left),
		Right:    isDown(keys.Right),
		Up:       isDown(keys.Up),
		Down:     isDown(keys.Down),
		Jump:     isDown(keys.Jump),
		LookX:    mouseDelta.X,
		LookY:    -mouseDelta.Y,
	}
}

// lookAccumulator collects mouse movement between simulation steps. Each
// delta is handed to exactly one step.
type lookAccumulator struct {
	delta rl.Vector2
}

func (l *lookAccumulator) Add(d rl.Vector2) {
	l.delta = rl.Vector2Add(l.delta, d)
}

func (l *lookAccumulator) Take() rl.Vector2 {
	d := l.delta
	l.delta = rl.Vector2{}
	return d
}
