// Package render turns simulation state into the values a GL renderer
// uploads as uniforms. Nothing here draws.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rowanlovejoy/bounding-box/internal/components"
	"github.com/rowanlovejoy/bounding-box/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	NearPlane float32 = 0.1
	FarPlane  float32 = 1000.0
)

var (
	// LightDirection is a directional light in world space (w = 0), moved
	// into view space every frame.
	LightDirection = mgl32.Vec4{-0.75, -0.5, -0.3, 0.0}
	LightColor     = mgl32.Vec3{1.0, 1.0, 1.0}
)

// Model is the local-to-world transform of one drawable entity. Position
// and Extent are the collision box, for drawing entities without a mesh.
type Model struct {
	Name     string
	Kind     engine.Kind
	Handle   any
	Matrix   mgl32.Mat4
	Position rl.Vector3
	Extent   rl.Vector3
}

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Tick          uint64
	View          mgl32.Mat4
	Projection    mgl32.Mat4
	LightPosition mgl32.Vec4
	LightColor    mgl32.Vec3
	Models        []Model
}

// Build publishes the view from the character and a model matrix for every
// entity that is not the character.
func Build(tick uint64, c *components.Character, entities []engine.Ticker, aspect float32) Frame {
	view := FromRaylib(c.ViewMatrix())

	f := Frame{
		Tick:          tick,
		View:          view,
		Projection:    mgl32.Perspective(mgl32.DegToRad(c.Fov()), aspect, NearPlane, FarPlane),
		LightPosition: view.Mul4x1(LightDirection),
		LightColor:    LightColor,
		Models:        make([]Model, 0, len(entities)),
	}

	for _, e := range entities {
		b := e.Base()
		if b.Kind == engine.KindCharacter {
			continue
		}
		m := Model{
			Name:     b.Name,
			Kind:     b.Kind,
			Matrix:   ModelMatrix(b),
			Position: b.Position,
			Extent:   b.Extent,
		}
		if b.Drawable != nil {
			m.Handle = b.Drawable.Handle
		}
		f.Models = append(f.Models, m)
	}

	return f
}

// ModelMatrix is translate(position) * translate(offset) * scale(scale).
// Bodies without a drawable get no offset and unit scale.
func ModelMatrix(b *engine.Body) mgl32.Mat4 {
	m := mgl32.Translate3D(b.Position.X, b.Position.Y, b.Position.Z)
	if b.Drawable == nil {
		return m
	}

	o, s := b.Drawable.Offset, b.Drawable.Scale
	m = m.Mul4(mgl32.Translate3D(o.X, o.Y, o.Z))
	return m.Mul4(mgl32.Scale3D(s.X, s.Y, s.Z))
}

// FromRaylib converts a raylib matrix to mathgl. Both are column-major.
func FromRaylib(m rl.Matrix) mgl32.Mat4 {
	return mgl32.Mat4{
		m.M0, m.M1, m.M2, m.M3,
		m.M4, m.M5, m.M6, m.M7,
		m.M8, m.M9, m.M10, m.M11,
		m.M12, m.M13, m.M14, m.M15,
	}
}

// ToRaylib converts a mathgl matrix back to raylib.
func ToRaylib(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Vec3 converts a raylib vector to mathgl.
func Vec3(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
