package world

import "github.com/rowanlovejoy/bounding-box/internal/components"

// Input is the level-triggered control state sampled once per tick.
// LookX and LookY are raw mouse deltas; LookY is positive when looking up.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Jump     bool

	LookX float32
	LookY float32
}

// Intents translates the snapshot into character intents. Up and Down are
// only produced in free flight. Jump always yields exactly one of
// JumpPressed or JumpReleased so the latch sees every edge.
func (in Input) Intents(freeFly bool) []components.Intent {
	intents := make([]components.Intent, 0, 7)

	if in.Forward {
		intents = append(intents, components.IntentForward)
	}
	if in.Backward {
		intents = append(intents, components.IntentBackward)
	}
	if in.Left {
		intents = append(intents, components.IntentLeft)
	}
	if in.Right {
		intents = append(intents, components.IntentRight)
	}
	if freeFly {
		if in.Up {
			intents = append(intents, components.IntentUp)
		}
		if in.Down {
			intents = append(intents, components.IntentDown)
		}
	}

	if in.Jump {
		intents = append(intents, components.IntentJumpPressed)
	} else {
		intents = append(intents, components.IntentJumpReleased)
	}
	return intents
}
