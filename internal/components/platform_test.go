package components

import (
	"math"
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestPlatform(oscillate bool) *Platform {
	rng := rand.New(rand.NewSource(7))
	return NewPlatform("P", rl.Vector3{X: 0, Y: 0, Z: -5.5}, rl.Vector3{X: 2, Y: 1, Z: 2}, oscillate, rng)
}

func TestRandomPhaseInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := RandomPhase(rng)
		if p < 1 || p >= 10 {
			t.Fatalf("Phase %v outside [1,10)", p)
		}
	}
}

func TestPlatformPhasesDiffer(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewPlatform("A", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, true, rng)
	b := NewPlatform("B", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, true, rng)

	if a.Phase == b.Phase {
		t.Error("Platforms drawn from one source should get different phases")
	}
}

func TestPlatformStaticDoesNotMove(t *testing.T) {
	p := newTestPlatform(false)
	start := p.Position

	for i := 0; i < 120; i++ {
		p.Tick(1.0 / 60)
	}

	if p.Position != start {
		t.Errorf("Static platform moved to %v", p.Position)
	}
	if p.Clock() != 0 {
		t.Errorf("Static platform should not advance its clock, got %v", p.Clock())
	}
}

func TestPlatformBobsVertically(t *testing.T) {
	p := newTestPlatform(true)
	start := p.Position

	dt := float32(1.0 / 60)
	p.Tick(dt)

	wantY := float32(math.Sin(float64(dt+p.Phase))) * BobAmplitude * p.Phase
	if !approx(p.Position.Y-start.Y, wantY) {
		t.Errorf("Expected first bob %v, got %v", wantY, p.Position.Y-start.Y)
	}
	if p.Position.X != start.X || p.Position.Z != start.Z {
		t.Errorf("Bob must be vertical only, got %v", p.Position)
	}
	if p.Velocity() != (rl.Vector3{}) {
		t.Errorf("Velocity should be consumed, got %v", p.Velocity())
	}
}

func TestPlatformBobStaysBounded(t *testing.T) {
	p := newTestPlatform(true)
	start := p.Position.Y

	// Per-tick displacement is at most amplitude*phase < 0.025
	for i := 0; i < 60*30; i++ {
		before := p.Position.Y
		p.Tick(1.0 / 60)
		if d := float32(math.Abs(float64(p.Position.Y - before))); d > BobAmplitude*p.Phase+1e-6 {
			t.Fatalf("tick %d moved %v, more than the bob amplitude", i, d)
		}
	}
	// The sine integrates to at most 2 over any window, scaled by amplitude*phase*TickRate
	if math.Abs(float64(p.Position.Y-start)) > float64(2*BobAmplitude*p.Phase*TickRate)+0.01 {
		t.Errorf("Platform drifted too far: %v", p.Position.Y-start)
	}
}

func TestPlatformNonPositiveDeltaIsNoop(t *testing.T) {
	p := newTestPlatform(true)
	p.Tick(1.0 / 60)
	clock := p.Clock()
	y := p.Position.Y

	p.Tick(0)
	p.Tick(-1)

	if p.Clock() != clock {
		t.Errorf("Clock changed on non-positive delta: %v -> %v", clock, p.Clock())
	}
	if p.Position.Y != y {
		t.Errorf("Platform moved on non-positive delta: %v -> %v", y, p.Position.Y)
	}
}

func TestPlatformNonPositiveDeltaStillIntegrates(t *testing.T) {
	p := newTestPlatform(true)
	p.AddVelocity(rl.Vector3{X: 1})

	p.Tick(0)

	if p.Position.X != 1 {
		t.Errorf("Externally added velocity should still integrate, got X=%v", p.Position.X)
	}
}
