package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

// platform spans x:[-2,2], y:[0,1], z:[-2,2]
var platform = Box{
	Position: rl.Vector3{X: -2, Y: 0, Z: -2},
	Extent:   rl.Vector3{X: 4, Y: 1, Z: 4},
}

func TestClassifyCardinals(t *testing.T) {
	tests := []struct {
		in   rl.Vector3
		want Direction
	}{
		{rl.Vector3{X: 1}, DirectionPosX},
		{rl.Vector3{X: -1}, DirectionNegX},
		{rl.Vector3{Y: 1}, DirectionPosY},
		{rl.Vector3{Y: -1}, DirectionNegY},
		{rl.Vector3{Z: 1}, DirectionPosZ},
		{rl.Vector3{Z: -1}, DirectionNegZ},
		{rl.Vector3{Y: -0.3}, DirectionNegY},
		{rl.Vector3{X: 0.2, Y: -5, Z: 0.1}, DirectionNegY},
	}

	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifyTieBreakUsesEnumerationOrder(t *testing.T) {
	// +X and +Y are equally good; +X comes first
	if got := Classify(rl.Vector3{X: 1, Y: 1}); got != DirectionPosX {
		t.Errorf("Expected +X on X/Y tie, got %v", got)
	}
	// -Y and +Z tie; -Y comes first
	if got := Classify(rl.Vector3{Y: -2, Z: 2}); got != DirectionNegY {
		t.Errorf("Expected -Y on Y/Z tie, got %v", got)
	}
}

func TestClassifyZeroIsNone(t *testing.T) {
	if got := Classify(rl.Vector3{}); got != DirectionNone {
		t.Errorf("Expected DirectionNone for zero vector, got %v", got)
	}
}

func TestDirectionAxisAndVector(t *testing.T) {
	if DirectionNegY.Axis() != 1 {
		t.Errorf("Expected -Y axis 1, got %d", DirectionNegY.Axis())
	}
	if DirectionPosZ.Axis() != 2 {
		t.Errorf("Expected +Z axis 2, got %d", DirectionPosZ.Axis())
	}
	if DirectionNone.Axis() != -1 {
		t.Errorf("Expected none axis -1, got %d", DirectionNone.Axis())
	}
	if DirectionNegX.Vector() != (rl.Vector3{X: -1}) {
		t.Errorf("Unexpected -X vector %v", DirectionNegX.Vector())
	}
	if DirectionNone.Vector() != (rl.Vector3{}) {
		t.Errorf("DirectionNone should have zero vector, got %v", DirectionNone.Vector())
	}
	if DirectionNegY.String() != "-Y" {
		t.Errorf("Expected '-Y', got '%s'", DirectionNegY.String())
	}
}

func TestDetectMissOutsideBox(t *testing.T) {
	center := rl.Vector3{X: 0, Y: 3, Z: 0}

	c := Detect(center, 0.85, platform)

	if c.Hit {
		t.Fatal("Sphere well above the box should not hit")
	}
	if c.Direction != DirectionPosX {
		t.Errorf("Miss should report default +X, got %v", c.Direction)
	}
	if c.Separation != (rl.Vector3{}) {
		t.Errorf("Miss should report zero separation, got %v", c.Separation)
	}
}

func TestDetectJustOutsideRadiusIsMiss(t *testing.T) {
	// closest point is (0,1,0), 0.9 away from the center
	center := rl.Vector3{X: 0, Y: 1.9, Z: 0}

	if c := Detect(center, 0.85, platform); c.Hit {
		t.Errorf("Sphere 0.9 above the top face should not hit, got %+v", c)
	}
}

func TestDetectTopSurface(t *testing.T) {
	center := rl.Vector3{X: 0.5, Y: 1.5, Z: 0.5}

	c := Detect(center, 0.85, platform)

	if !c.Hit {
		t.Fatal("Expected hit on top surface")
	}
	if c.Direction != DirectionNegY {
		t.Errorf("Expected -Y, got %v", c.Direction)
	}
	if !approx(c.Separation.Y, -0.5) {
		t.Errorf("Expected separation Y -0.5, got %v", c.Separation.Y)
	}
	if !approx(c.Penetration(0.85), 0.35) {
		t.Errorf("Expected penetration 0.35, got %v", c.Penetration(0.85))
	}
	push := c.PushOut(0.85)
	if !approx(push.Y, 0.35) || push.X != 0 || push.Z != 0 {
		t.Errorf("Expected push +Y 0.35, got %v", push)
	}
}

func TestDetectSideFace(t *testing.T) {
	// Sphere to the left of the box, at mid height
	center := rl.Vector3{X: -2.5, Y: 0.5, Z: 0}

	c := Detect(center, 0.85, platform)

	if !c.Hit {
		t.Fatal("Expected hit on -X side")
	}
	if c.Direction != DirectionPosX {
		t.Errorf("Box lies in +X of the sphere, got %v", c.Direction)
	}
	push := c.PushOut(0.85)
	if !approx(push.X, -0.35) {
		t.Errorf("Expected push -X 0.35, got %v", push)
	}
}

func TestDetectUnderside(t *testing.T) {
	center := rl.Vector3{X: 0, Y: -0.5, Z: 0}

	c := Detect(center, 0.85, platform)

	if !c.Hit || c.Direction != DirectionPosY {
		t.Fatalf("Expected +Y hit from below, got %+v", c)
	}
	if push := c.PushOut(0.85); !approx(push.Y, -0.35) {
		t.Errorf("Expected push down 0.35, got %v", push)
	}
}

func TestDetectCenterInsideBoxIsUnresolvable(t *testing.T) {
	c := Detect(platform.Center(), 0.85, platform)

	if !c.Hit {
		t.Fatal("Sphere centered in the box must hit")
	}
	if c.Direction != DirectionNone {
		t.Errorf("Zero separation should classify as none, got %v", c.Direction)
	}
	if c.Resolvable() {
		t.Error("Zero separation must not be resolvable")
	}
	if c.PushOut(0.85) != (rl.Vector3{}) {
		t.Errorf("Unresolvable collision must not push, got %v", c.PushOut(0.85))
	}
}

func TestSphereCenter(t *testing.T) {
	got := SphereCenter(rl.Vector3{X: 0, Y: 5, Z: 0}, 0.85)
	want := rl.Vector3{X: 0.85, Y: 5.85, Z: 0.85}
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Z, want.Z) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(float32(5), 0, 1) != 1 {
		t.Error("Clamp should cap at max")
	}
	if Clamp(-3, -2, 2) != -2 {
		t.Error("Clamp should floor at min")
	}
	if Clamp(0.5, 0.0, 1.0) != 0.5 {
		t.Error("Clamp should pass through in-range values")
	}
}
