package components

import (
	"math"

	"github.com/rowanlovejoy/bounding-box/internal/engine"
	"github.com/rowanlovejoy/bounding-box/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	pitchMax float32 = 89.0
	pitchMin float32 = -89.0
)

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// Intent is a discrete, level-triggered input for one tick.
type Intent int

const (
	IntentForward Intent = iota
	IntentBackward
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
	IntentJumpPressed
	IntentJumpReleased
)

// CharacterConfig holds the tunables of the player character. Speeds and
// impulses are displacement per tick.
type CharacterConfig struct {
	Radius           float32
	Extent           rl.Vector3
	MovementSpeed    float32
	MouseSensitivity float32
	Fov              float32
	Yaw              float32 // degrees
	Pitch            float32 // degrees
	JumpImpulse      float32
	JumpDecay        float32
	JumpMaxTicks     int
}

func DefaultCharacterConfig() CharacterConfig {
	return CharacterConfig{
		Radius:           0.85,
		Extent:           rl.Vector3{X: 3, Y: 3, Z: 3},
		MovementSpeed:    0.035,
		MouseSensitivity: 0.1,
		Fov:              85.0,
		Yaw:              -90.0,
		Pitch:            0.0,
		JumpImpulse:      0.25,
		JumpDecay:        0.95,
		JumpMaxTicks:     180,
	}
}

// Character is the player-controlled entity: a sphere of Radius for
// collision, a first-person orientation basis and the jump state machine.
type Character struct {
	*engine.Body

	Yaw   float32
	Pitch float32

	front   rl.Vector3 // full look direction, view only
	forward rl.Vector3 // front flattened onto XZ, used for movement
	right   rl.Vector3
	up      rl.Vector3

	radius           float32
	movementSpeed    float32
	mouseSensitivity float32
	fov              float32
	grounded         bool

	jump jumpState
}

func NewCharacter(position rl.Vector3, cfg CharacterConfig) *Character {
	c := &Character{
		Body:             engine.NewBody("Player", engine.KindCharacter, position, cfg.Extent),
		Yaw:              cfg.Yaw,
		Pitch:            physics.Clamp(cfg.Pitch, pitchMin, pitchMax),
		radius:           cfg.Radius,
		movementSpeed:    cfg.MovementSpeed,
		mouseSensitivity: cfg.MouseSensitivity,
		fov:              cfg.Fov,
		jump:             newJumpState(cfg.JumpImpulse, cfg.JumpDecay, cfg.JumpMaxTicks),
	}
	c.updateDirectionVectors()
	return c
}

// ApplyIntent turns one input intent into a velocity contribution or a jump
// latch change. Movement is relative to the current view, not world axes.
func (c *Character) ApplyIntent(intent Intent) {
	switch intent {
	case IntentForward:
		c.AddVelocity(rl.Vector3Scale(c.forward, c.movementSpeed))
	case IntentBackward:
		c.AddVelocity(rl.Vector3Scale(c.forward, -c.movementSpeed))
	case IntentRight:
		c.AddVelocity(rl.Vector3Scale(c.right, c.movementSpeed))
	case IntentLeft:
		c.AddVelocity(rl.Vector3Scale(c.right, -c.movementSpeed))
	case IntentUp:
		c.AddVelocity(rl.Vector3Scale(worldUp, c.movementSpeed))
	case IntentDown:
		c.AddVelocity(rl.Vector3Scale(worldUp, -c.movementSpeed))
	case IntentJumpPressed:
		if c.jump.press(c.grounded) {
			c.grounded = false
		}
	case IntentJumpReleased:
		c.jump.release()
	}
}

// UpdateJump advances the jump state machine by one tick. Call it once per
// tick after the tick's intents.
func (c *Character) UpdateJump() {
	if impulse, ok := c.jump.rise(); ok {
		c.AddVelocity(rl.Vector3Scale(worldUp, impulse))
	}
}

// UpdateLook applies a mouse-look delta and rebuilds the orientation basis.
func (c *Character) UpdateLook(yawDelta, pitchDelta float32) {
	c.Yaw += yawDelta * c.mouseSensitivity
	c.Pitch += pitchDelta * c.mouseSensitivity

	// Constrain pitch to prevent the view flipping over
	c.Pitch = physics.Clamp(c.Pitch, pitchMin, pitchMax)

	c.updateDirectionVectors()
}

func (c *Character) updateDirectionVectors() {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	dir := rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	c.front = rl.Vector3Normalize(dir)

	// Y is dropped so looking up or down never lifts the character
	c.forward = rl.Vector3Normalize(rl.Vector3{X: dir.X, Y: 0, Z: dir.Z})

	// Cross products shrink as pitch grows; normalize so speed stays constant
	c.right = rl.Vector3Normalize(rl.Vector3CrossProduct(c.front, worldUp))
	c.up = rl.Vector3Normalize(rl.Vector3CrossProduct(c.right, c.front))
}

// Tick integrates the velocity gathered from intents, jump and gravity.
func (c *Character) Tick(deltaTime float32) {
	c.Integrate()
}

// ViewMatrix is lookAt(position, position+front, up), computed on demand.
func (c *Character) ViewMatrix() rl.Matrix {
	return rl.MatrixLookAt(c.Position, rl.Vector3Add(c.Position, c.front), c.up)
}

// Camera returns the raylib camera matching ViewMatrix.
func (c *Character) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.front),
		Up:         c.up,
		Fovy:       c.fov,
		Projection: rl.CameraPerspective,
	}
}

// SphereCenter is the center of the collision sphere.
func (c *Character) SphereCenter() rl.Vector3 {
	return physics.SphereCenter(c.Position, c.radius)
}

func (c *Character) Front() rl.Vector3   { return c.front }
func (c *Character) Forward() rl.Vector3 { return c.forward }
func (c *Character) Right() rl.Vector3   { return c.right }
func (c *Character) Up() rl.Vector3      { return c.up }
func (c *Character) Radius() float32     { return c.radius }
func (c *Character) Fov() float32        { return c.fov }

func (c *Character) MovementSpeed() float32 {
	return c.movementSpeed
}

// SetMovementSpeed sets the per-tick speed; negative values become zero.
func (c *Character) SetMovementSpeed(speed float32) {
	if speed < 0 {
		speed = 0
	}
	c.movementSpeed = speed
}

func (c *Character) Grounded() bool {
	return c.grounded
}

// SetGrounded records top-face contact. Touching down ends any rise still
// in progress and rearms the full impulse, so the very next press jumps.
func (c *Character) SetGrounded(grounded bool) {
	c.grounded = grounded
	if grounded {
		c.jump.reset()
	}
}

// Stop drops pending velocity and any rise in progress and leaves the
// character airborne. The held latch survives so a key still down is not a
// new press.
func (c *Character) Stop() {
	c.ClearVelocity()
	c.grounded = false
	c.jump.reset()
}

func (c *Character) JumpPhase() JumpPhase {
	return c.jump.phase
}

// JumpTicks is the number of ticks spent in the current rise.
func (c *Character) JumpTicks() int {
	return c.jump.ticks
}

func (c *Character) JumpHeld() bool {
	return c.jump.held
}
