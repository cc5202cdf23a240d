package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum holds the six view planes, used to skip entities the camera
// cannot see.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane is ax + by + cz + d = 0 with a unit normal.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// ExtractFrustum pulls the planes out of a view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(viewProjection mgl32.Mat4) Frustum {
	r0 := viewProjection.Row(0)
	r1 := viewProjection.Row(1)
	r2 := viewProjection.Row(2)
	r3 := viewProjection.Row(3)

	var f Frustum
	f.planes[0] = planeFrom(r3.Add(r0))
	f.planes[1] = planeFrom(r3.Sub(r0))
	f.planes[2] = planeFrom(r3.Add(r1))
	f.planes[3] = planeFrom(r3.Sub(r1))
	f.planes[4] = planeFrom(r3.Add(r2))
	f.planes[5] = planeFrom(r3.Sub(r2))
	return f
}

// Frustum returns the frustum of the frame's camera.
func (f Frame) Frustum() Frustum {
	return ExtractFrustum(f.Projection.Mul4(f.View))
}

func planeFrom(v mgl32.Vec4) Plane {
	p := Plane{Normal: v.Vec3(), Distance: v.W()}
	length := p.Normal.Len()
	if length == 0 {
		return p
	}
	return Plane{
		Normal:   p.Normal.Mul(1 / length),
		Distance: p.Distance / length,
	}
}

// ContainsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for i := range f.planes {
		if f.planes[i].Normal.Dot(center)+f.planes[i].Distance < -radius {
			return false
		}
	}
	return true
}

// ContainsModel tests the bounding sphere of a model's collision box.
func (f *Frustum) ContainsModel(m Model) bool {
	half := Vec3(m.Extent).Mul(0.5)
	center := Vec3(m.Position).Add(half)
	return f.ContainsSphere(center, half.Len())
}
