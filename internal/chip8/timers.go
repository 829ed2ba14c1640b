package chip8

// TimerRateHz is the fixed decay rate of the delay and sound timers,
// independent of the configured CPU clock.
const TimerRateHz = 60

// Timers is the pair of 8-bit hardware counters. Both decay at 60Hz; the
// host schedules Tick on that fixed cadence regardless of CPU clock speed.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements each nonzero counter by exactly one. A counter at zero
// stays at zero.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}
