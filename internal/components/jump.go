package components

// JumpPhase is the state of the character's jump.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	JumpRising
)

func (p JumpPhase) String() string {
	if p == JumpRising {
		return "Rising"
	}
	return "Idle"
}

// jumpState is a ballistic jump: once started it keeps rising with a
// geometrically decaying impulse until it lands or runs out of ticks.
type jumpState struct {
	phase   JumpPhase
	ticks   int
	impulse float32
	held    bool

	baseImpulse float32
	decay       float32
	maxTicks    int
}

func newJumpState(baseImpulse, decay float32, maxTicks int) jumpState {
	return jumpState{
		phase:       JumpIdle,
		impulse:     baseImpulse,
		baseImpulse: baseImpulse,
		decay:       decay,
		maxTicks:    maxTicks,
	}
}

// press handles a level-triggered "jump held" input. It starts a rise only
// on the rising edge while grounded, and reports whether it did.
func (j *jumpState) press(grounded bool) bool {
	edge := !j.held
	j.held = true

	if !edge || !grounded {
		return false
	}
	j.phase = JumpRising
	return true
}

// release clears the held latch. An ongoing rise continues.
func (j *jumpState) release() {
	j.held = false
}

// rise returns this tick's upward impulse while rising.
func (j *jumpState) rise() (float32, bool) {
	if j.phase != JumpRising {
		return 0, false
	}

	impulse := j.impulse
	j.ticks++
	j.impulse *= j.decay

	if j.ticks >= j.maxTicks {
		j.reset()
	}
	return impulse, true
}

func (j *jumpState) reset() {
	j.phase = JumpIdle
	j.ticks = 0
	j.impulse = j.baseImpulse
}
