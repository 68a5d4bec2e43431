package core

// Cue is a fire-once notification for the audio collaborator.
// Cues are emitted by the simulation and never polled.
type Cue int

const (
	CueCountdownTick Cue = iota // a countdown second elapsed (also on confirm)
	CueStart                    // countdown finished, run begins
	CueFruitEaten
	CuePowerUp // power-up collected
	CueTurbo   // combo completed, turbo activated
	CueDeath
)

// String returns a short name for the cue.
func (c Cue) String() string {
	switch c {
	case CueCountdownTick:
		return "count"
	case CueStart:
		return "start"
	case CueFruitEaten:
		return "eat"
	case CuePowerUp:
		return "power"
	case CueTurbo:
		return "turbo"
	case CueDeath:
		return "die"
	default:
		return "unknown"
	}
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	return []Cue{CueCountdownTick, CueStart, CueFruitEaten, CuePowerUp, CueTurbo, CueDeath}
}
