package decode

// timer counts whole elapsed microseconds since the last reset,
// saturating at maxUs. With ticksPerMicro > 1 a prescaler divides the
// tick rate down to one microsecond per increment.
type timer struct {
	ticksPerMicro int
	maxUs         int

	prescale int
	us       int
}

// elapsed gets the current count in microseconds.
func (t *timer) elapsed() int {
	return t.us
}

// tick advances the timer by one sampling tick. Reset wins over advance
// when both apply on the same tick.
func (t *timer) tick(reset bool) {
	if reset {
		t.prescale, t.us = 0, 0
		return
	}
	t.prescale++
	if t.prescale >= t.ticksPerMicro {
		t.prescale = 0
		if t.us < t.maxUs {
			t.us++
		}
	}
}
