package decode

// edgeDetector turns the raw line level into single-tick rising/falling
// pulses. The raw sample passes through a two-stage synchronizer before
// edge comparison, so a pulse shows up two ticks after the line moved.
// Rising and falling are mutually exclusive and each lasts exactly one
// tick.
type edgeDetector struct {
	sync [2]bool // sync[0] newest raw sample, sync[1] one tick older
	prev bool    // synchronized level of the previous tick
}

// sample consumes one raw line sample and reports edge pulses for this
// tick.
func (e *edgeDetector) sample(raw bool) (rising, falling bool) {
	cur := e.sync[1]
	e.sync[1] = e.sync[0]
	e.sync[0] = raw
	rising = cur && !e.prev
	falling = e.prev && !cur
	e.prev = cur
	return
}

func (e *edgeDetector) reset() {
	*e = edgeDetector{}
}
