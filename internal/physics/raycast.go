package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// RayHit describes where a ray met a box. Index is the position of the box
// in the slice passed to Raycast.
type RayHit struct {
	Index    int
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest hit among boxes within maxDistance.
func Raycast(origin, direction rl.Vector3, boxes []Box, maxDistance float32) (RayHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := RayHit{Index: -1, Distance: maxDistance}
	hit := false

	for i, box := range boxes {
		if h, ok := RaycastBox(origin, direction, box, maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			closest.Index = i
			hit = true
		}
	}

	return closest, hit
}

// RaycastBox intersects a ray with a box using the slab method. direction
// must be normalized.
func RaycastBox(origin, direction rl.Vector3, box Box, maxDistance float32) (RayHit, bool) {
	min, max := box.Min(), box.Max()
	tmin, tmax := float32(-1e30), float32(1e30)

	for axis := 0; axis < 3; axis++ {
		o, d := component(origin, axis), component(direction, axis)
		lo, hi := component(min, axis), component(max, axis)

		if d == 0 {
			// Parallel to this slab: miss unless the origin lies inside it
			if o < lo || o > hi {
				return RayHit{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RayHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RayHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RayHit{Point: point, Normal: faceNormal(point, min, max), Distance: t}, true
}

// faceNormal returns the outward normal of the face point lies on.
func faceNormal(point, min, max rl.Vector3) rl.Vector3 {
	const epsilon = 0.001
	for axis, dir := range []Direction{DirectionNegX, DirectionNegY, DirectionNegZ} {
		p := component(point, axis)
		if abs(p-component(min, axis)) < epsilon {
			return dir.Vector()
		}
		if abs(p-component(max, axis)) < epsilon {
			return rl.Vector3Negate(dir.Vector())
		}
	}
	return cardinals[DirectionPosZ]
}
