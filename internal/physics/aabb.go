package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an axis-aligned box anchored at its min corner: it spans
// [Position, Position+Extent].
type Box struct {
	Position rl.Vector3
	Extent   rl.Vector3
}

// NewBoxFromCenter creates a Box from a center point and full size dimensions.
func NewBoxFromCenter(center, size rl.Vector3) Box {
	half := rl.Vector3Scale(size, 0.5)
	return Box{
		Position: rl.Vector3Subtract(center, half),
		Extent:   size,
	}
}

func (b Box) Min() rl.Vector3 {
	return b.Position
}

func (b Box) Max() rl.Vector3 {
	return rl.Vector3Add(b.Position, b.Extent)
}

func (b Box) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(b.Extent, 0.5)
}

func (b Box) Center() rl.Vector3 {
	return rl.Vector3Add(b.Position, b.HalfExtents())
}

func (b Box) Intersects(o Box) bool {
	aMin, aMax := b.Min(), b.Max()
	bMin, bMax := o.Min(), o.Max()
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y &&
		aMin.Z <= bMax.Z && aMax.Z >= bMin.Z
}

// ClosestPoint returns the point of the box nearest to p.
func (b Box) ClosestPoint(p rl.Vector3) rl.Vector3 {
	center := b.Center()
	half := b.HalfExtents()
	clamped := ClampVector(rl.Vector3Subtract(p, center), rl.Vector3Negate(half), half)
	return rl.Vector3Add(center, clamped)
}
