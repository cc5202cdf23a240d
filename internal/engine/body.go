package engine

import (
	"github.com/google/uuid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind tags the closed set of entity variants the world knows how to tick.
type Kind int

const (
	KindStatic Kind = iota
	KindPlatform
	KindCharacter
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "Static"
	case KindPlatform:
		return "Platform"
	case KindCharacter:
		return "Character"
	}
	return "Unknown"
}

// Drawable is the opaque visual attached to a body. The simulation never
// looks inside Handle; Offset and Scale only feed the model matrix.
type Drawable struct {
	Handle any
	Offset rl.Vector3
	Scale  rl.Vector3
}

// Ticker is implemented by everything the world steps once per tick.
type Ticker interface {
	Tick(deltaTime float32)
	Base() *Body
}

// Body is the shared movable-entity record. Position is the min corner of
// the box [Position, Position+Extent].
type Body struct {
	ID       uuid.UUID
	Name     string
	Kind     Kind
	Position rl.Vector3
	Extent   rl.Vector3
	Drawable *Drawable

	velocity rl.Vector3
}

func NewBody(name string, kind Kind, position, extent rl.Vector3) *Body {
	return &Body{
		ID:       uuid.New(),
		Name:     name,
		Kind:     kind,
		Position: position,
		Extent:   extent,
	}
}

// AddVelocity accumulates delta into the pending velocity.
func (b *Body) AddVelocity(delta rl.Vector3) {
	b.velocity = rl.Vector3Add(b.velocity, delta)
}

// Velocity returns the displacement that the next Integrate will apply.
func (b *Body) Velocity() rl.Vector3 {
	return b.velocity
}

// ClearVelocity discards the pending velocity without moving.
func (b *Body) ClearVelocity() {
	b.velocity = rl.Vector3{}
}

// Integrate consumes the accumulated velocity. It must run exactly once per
// tick: a second call moves nothing, a skipped call carries velocity over.
func (b *Body) Integrate() {
	b.Position = rl.Vector3Add(b.Position, b.velocity)
	b.velocity = rl.Vector3{}
}

// Tick is the static-entity behaviour.
func (b *Body) Tick(deltaTime float32) {
	b.Integrate()
}

func (b *Body) Base() *Body {
	return b
}

// SetDrawable attaches a visual. A nil handle is allowed; the body still
// takes part in physics.
func (b *Body) SetDrawable(handle any, offset, scale rl.Vector3) {
	b.Drawable = &Drawable{Handle: handle, Offset: offset, Scale: scale}
}

// Center returns the midpoint of the body's box.
func (b *Body) Center() rl.Vector3 {
	return rl.Vector3Add(b.Position, rl.Vector3Scale(b.Extent, 0.5))
}
