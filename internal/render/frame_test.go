package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rowanlovejoy/bounding-box/internal/components"
	"github.com/rowanlovejoy/bounding-box/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestFromRaylibMatchesLookAt(t *testing.T) {
	eye := rl.Vector3{X: 1, Y: 1.5, Z: 1}
	target := rl.Vector3{X: 1, Y: 1.5, Z: 0}
	up := rl.Vector3{Y: 1}

	got := FromRaylib(rl.MatrixLookAt(eye, target, up))
	want := mgl32.LookAtV(Vec3(eye), Vec3(target), Vec3(up))

	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Converted raylib view differs from mathgl:\n%v\n%v", got, want)
	}
}

func TestBuildViewAndLight(t *testing.T) {
	c := components.NewCharacter(rl.Vector3{X: 1, Y: 1.5, Z: 1}, components.DefaultCharacterConfig())

	f := Build(3, c, nil, 16.0/9.0)

	eye := f.View.Mul4x1(mgl32.Vec4{1, 1.5, 1, 1})
	if !approx(eye.X(), 0) || !approx(eye.Y(), 0) || !approx(eye.Z(), 0) {
		t.Errorf("Eye should be at the view origin, got %v", eye)
	}

	// Default view looks down -Z with no rotation, so the light direction is unchanged
	want := LightDirection
	for i := 0; i < 4; i++ {
		if !approx(f.LightPosition[i], want[i]) {
			t.Errorf("Light position %v, want %v", f.LightPosition, want)
			break
		}
	}
	if f.LightColor != LightColor {
		t.Errorf("Unexpected light color %v", f.LightColor)
	}
	if f.Tick != 3 {
		t.Errorf("Expected tick 3, got %d", f.Tick)
	}
}

func TestBuildSkipsCharacter(t *testing.T) {
	c := components.NewCharacter(rl.Vector3{}, components.DefaultCharacterConfig())
	floor := engine.NewBody("Floor", engine.KindStatic, rl.Vector3{X: -2}, rl.Vector3{X: 4, Y: 1, Z: 4})

	f := Build(1, c, []engine.Ticker{c, floor}, 1)

	if len(f.Models) != 1 {
		t.Fatalf("Expected 1 model, got %d", len(f.Models))
	}
	if f.Models[0].Name != "Floor" {
		t.Errorf("Expected Floor, got %s", f.Models[0].Name)
	}
}

func TestModelMatrixOrder(t *testing.T) {
	b := engine.NewBody("P", engine.KindPlatform, rl.Vector3{X: 10, Y: 0, Z: 0}, rl.Vector3{X: 4, Y: 1, Z: 4})
	b.SetDrawable("mesh", rl.Vector3{X: 1, Y: 0, Z: 1}, rl.Vector3{X: 2, Y: 1, Z: 2})

	m := ModelMatrix(b)

	// Local (1,1,1) is scaled first, then offset, then moved to the position
	p := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	if !approx(p.X(), 13) || !approx(p.Y(), 1) || !approx(p.Z(), 3) {
		t.Errorf("Expected (13,1,3), got %v", p)
	}
}

func TestModelMatrixWithoutDrawable(t *testing.T) {
	b := engine.NewBody("Box", engine.KindStatic, rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if !ModelMatrix(b).ApproxEqual(mgl32.Translate3D(1, 2, 3)) {
		t.Errorf("Body without drawable should only be translated")
	}
}

func TestToRaylibInvertsFromRaylib(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 1, 2))

	if got := FromRaylib(ToRaylib(m)); got != m {
		t.Errorf("Round trip changed the matrix:\n%v\n%v", got, m)
	}
	if r := ToRaylib(m); r.M12 != 1 || r.M13 != 2 || r.M14 != 3 {
		t.Errorf("Translation should land in M12..M14, got %v", r)
	}
}
