package components

import (
	"math"
	"math/rand"

	"github.com/rowanlovejoy/bounding-box/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// BobAmplitude scales the per-tick vertical velocity of a bobbing platform.
	BobAmplitude float32 = 0.0025

	// TickRate is the nominal simulation rate the bob velocity is tuned for.
	TickRate float32 = 60.0

	phaseMin = 1.0
	phaseMax = 10.0
)

// Platform is a box that optionally bobs up and down on a sine wave. The
// phase offset keeps platforms from moving in lockstep.
type Platform struct {
	*engine.Body

	Oscillate bool
	Phase     float32 // in [1, 10)

	clock float32 // seconds of simulated time seen by this platform
}

// NewPlatform creates a platform with a phase drawn from rng.
func NewPlatform(name string, position, size rl.Vector3, oscillate bool, rng *rand.Rand) *Platform {
	return &Platform{
		Body:      engine.NewBody(name, engine.KindPlatform, position, size),
		Oscillate: oscillate,
		Phase:     RandomPhase(rng),
	}
}

// RandomPhase draws a phase offset in [1, 10).
func RandomPhase(rng *rand.Rand) float32 {
	return phaseMin + rng.Float32()*(phaseMax-phaseMin)
}

// Tick injects the bob velocity, then integrates. A non-positive deltaTime
// leaves the clock untouched and adds no bob.
func (p *Platform) Tick(deltaTime float32) {
	if p.Oscillate && deltaTime > 0 {
		p.clock += deltaTime

		ticks := deltaTime * TickRate
		y := float32(math.Sin(float64(p.clock+p.Phase))) * BobAmplitude * p.Phase * ticks
		p.AddVelocity(rl.Vector3{Y: y})
	}

	p.Integrate()
}

// Clock returns the platform's accumulated simulated time.
func (p *Platform) Clock() float32 {
	return p.clock
}
