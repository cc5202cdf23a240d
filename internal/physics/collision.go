package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Direction is the cardinal axis a collision is resolved along. It names
// where the box lies relative to the sphere: DirectionNegY means the closest
// box point is below the sphere, i.e. the sphere touches the box's top face.
type Direction int

const (
	DirectionPosX Direction = iota
	DirectionNegX
	DirectionPosY
	DirectionNegY
	DirectionPosZ
	DirectionNegZ

	// DirectionNone is returned for a separation with no usable direction
	// (zero length), which cannot be resolved along any axis.
	DirectionNone Direction = -1
)

// cardinals is in tie-break order: the first maximal dot product wins.
var cardinals = [...]rl.Vector3{
	DirectionPosX: {X: 1},
	DirectionNegX: {X: -1},
	DirectionPosY: {Y: 1},
	DirectionNegY: {Y: -1},
	DirectionPosZ: {Z: 1},
	DirectionNegZ: {Z: -1},
}

func (d Direction) String() string {
	switch d {
	case DirectionPosX:
		return "+X"
	case DirectionNegX:
		return "-X"
	case DirectionPosY:
		return "+Y"
	case DirectionNegY:
		return "-Y"
	case DirectionPosZ:
		return "+Z"
	case DirectionNegZ:
		return "-Z"
	}
	return "none"
}

// Vector returns the unit cardinal for d, or zero for DirectionNone.
func (d Direction) Vector() rl.Vector3 {
	if d < DirectionPosX || d > DirectionNegZ {
		return rl.Vector3{}
	}
	return cardinals[d]
}

// Axis returns 0, 1 or 2 for X, Y or Z, and -1 for DirectionNone.
func (d Direction) Axis() int {
	if d < DirectionPosX || d > DirectionNegZ {
		return -1
	}
	return int(d) / 2
}

// Collision is the result of a single sphere-vs-box test.
type Collision struct {
	Hit        bool
	Direction  Direction
	Separation rl.Vector3 // closest box point minus sphere center
}

// Resolvable reports whether the collision can be corrected along one axis.
func (c Collision) Resolvable() bool {
	return c.Hit && c.Direction != DirectionNone
}

// Penetration is the overlap depth along the classified axis.
func (c Collision) Penetration(radius float32) float32 {
	return radius - abs(component(c.Separation, c.Direction.Axis()))
}

// PushOut returns the single-axis correction that moves the sphere away from
// the box by its penetration depth. Zero when not resolvable.
func (c Collision) PushOut(radius float32) rl.Vector3 {
	if !c.Resolvable() {
		return rl.Vector3{}
	}
	// The box lies along Direction, so the sphere moves the opposite way.
	return rl.Vector3Scale(c.Direction.Vector(), -c.Penetration(radius))
}

// SphereCenter converts a character position to its sphere center. The
// character's position is the min corner of the sphere's bounding cube.
func SphereCenter(position rl.Vector3, radius float32) rl.Vector3 {
	return rl.Vector3{X: position.X + radius, Y: position.Y + radius, Z: position.Z + radius}
}

// Detect runs the closest-point sphere-vs-AABB test.
func Detect(center rl.Vector3, radius float32, box Box) Collision {
	separation := rl.Vector3Subtract(box.ClosestPoint(center), center)

	if rl.Vector3Length(separation) < radius {
		return Collision{
			Hit:        true,
			Direction:  Classify(separation),
			Separation: separation,
		}
	}

	return Collision{Hit: false, Direction: DirectionPosX}
}

// Classify picks the cardinal with the largest dot product against the
// normalized target. Ties go to the earliest direction in enumeration order.
func Classify(target rl.Vector3) Direction {
	length := rl.Vector3Length(target)
	if length == 0 || length != length {
		return DirectionNone
	}
	n := rl.Vector3Scale(target, 1/length)

	best := DirectionNone
	var max float32
	for i, dir := range cardinals {
		dot := rl.Vector3DotProduct(n, dir)
		if dot > max {
			max = dot
			best = Direction(i)
		}
	}
	return best
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return 0
}
