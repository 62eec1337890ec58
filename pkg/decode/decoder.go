package decode

// Phase is the acquisition state of the decoder.
type Phase int

// Acquisition phases.
const (
	// PhaseIdle waits out the warm-up delay between acquisitions.
	PhaseIdle Phase = iota
	// PhaseStart drives the line low to wake the sensor.
	PhaseStart
	// PhaseRun receives the 40 transmitted bits.
	PhaseRun
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStart:
		return "start"
	case PhaseRun:
		return "run"
	}
	return "invalid"
}

// BitThresholdUs classifies a received bit: an inter-falling-edge
// interval of at least 100 microseconds encodes a logical 1.
const BitThresholdUs = 100

// Config provides the timing parameters, fixed at construction.
type Config struct {
	// TicksPerMicro is the sampling frequency expressed as ticks per
	// microsecond.
	TicksPerMicro int
	// StartUs is the duration of the initiating low pulse in
	// microseconds. The same value bounds the inter-edge wait during
	// PhaseRun and acts as the watchdog timeout; the dual use is part of
	// the protocol contract, not a coincidence.
	StartUs int
	// WarmUs is the enforced delay between acquisitions in microseconds.
	WarmUs int
}

var defaultConfig = Config{
	TicksPerMicro: 1,
	StartUs:       18000,
	WarmUs:        1000000,
}

// Default gets the default config.
func Default() Config {
	return defaultConfig
}

// TickResult reports the externally visible outputs of one tick.
type TickResult struct {
	// DriveLow requests the caller to force the line low for this tick.
	DriveLow bool
	// DataReady is the single-tick pulse marking Reading as
	// authoritative.
	DataReady bool
	// Reading is the continuously computed view of the receive buffer,
	// meaningful only while DataReady is set.
	Reading Reading
}

// Decoder is the protocol state machine composing the timer, edge
// detector, bit counter and shift register. It has exactly one writer:
// the Tick step. All state advances deterministically once per tick.
type Decoder struct {
	conf Config

	phase   Phase
	timer   timer
	counter bitCounter
	reg     shiftRegister
	edges   edgeDetector
}

// New creates a Decoder. Zero config fields take defaults.
func New(conf Config) *Decoder {
	if conf.TicksPerMicro <= 0 {
		conf.TicksPerMicro = defaultConfig.TicksPerMicro
	}
	if conf.StartUs <= 0 {
		conf.StartUs = defaultConfig.StartUs
	}
	if conf.WarmUs <= 0 {
		conf.WarmUs = defaultConfig.WarmUs
	}
	d := &Decoder{conf: conf}
	d.Reset()
	return d
}

// Config gets the effective config.
func (d *Decoder) Config() Config {
	return d.conf
}

// Phase gets the current acquisition phase.
func (d *Decoder) Phase() Phase {
	return d.phase
}

// Elapsed gets the microseconds counted since the last timer rebase.
func (d *Decoder) Elapsed() int {
	return d.timer.elapsed()
}

// BitCount gets the number of falling edges received this acquisition.
func (d *Decoder) BitCount() int {
	return d.counter.value()
}

// Buffer gets the current 24-bit receive buffer content.
func (d *Decoder) Buffer() uint32 {
	return d.reg.value()
}

// Reset restores the power-on state: PhaseIdle with timer, counter,
// buffer and edge history all zero. Effective immediately, at any tick.
func (d *Decoder) Reset() {
	// the timer must be able to reach both comparison points, or a
	// StartUs beyond WarmUs would wedge the FSM in PhaseStart with the
	// line held low.
	maxUs := d.conf.WarmUs
	if d.conf.StartUs > maxUs {
		maxUs = d.conf.StartUs
	}
	d.phase = PhaseIdle
	d.timer = timer{ticksPerMicro: d.conf.TicksPerMicro, maxUs: maxUs}
	d.counter = bitCounter{}
	d.reg.reset()
	d.edges.reset()
}

// Tick advances the decoder by one sampling tick with the given raw line
// level. All outputs are pure functions of the state before the tick;
// state updates apply for the next tick.
func (d *Decoder) Tick(line bool) TickResult {
	rising, falling := d.edges.sample(line)
	t := d.timer.elapsed()
	c := d.counter.value()
	phase := d.phase

	acquired := phase == PhaseRun && c == MaxBits && rising
	timeout := phase != PhaseIdle && t == d.conf.StartUs

	res := TickResult{
		DriveLow:  phase == PhaseStart,
		DataReady: acquired,
		Reading:   ReadingFrom(d.reg.value()),
	}

	// Control signals, per the protocol contract:
	//  - the timer rebases at every phase boundary and at each falling
	//    edge during PhaseRun (the per-bit timing window);
	//  - the counter is held at zero throughout PhaseStart and advances
	//    once per falling edge during PhaseRun;
	//  - a falling edge during PhaseRun shifts in the classified bit when
	//    the counter is inside one of the enable windows. The windows are
	//    deliberately wider than the data bits: the two acknowledge bits
	//    (c 0..1) are shifted in and later pushed out of the 24-bit
	//    buffer, and c beyond 41 is harmless because no falling edge
	//    arrives once the counter saturates.
	timerReset := (phase == PhaseIdle && t == d.conf.WarmUs) ||
		timeout ||
		(phase == PhaseRun && falling) ||
		acquired
	counterReset := phase == PhaseStart
	counterAdvance := phase == PhaseRun && falling
	shift := counterAdvance && inShiftWindow(c)
	bit := t >= BitThresholdUs

	switch phase {
	case PhaseIdle:
		if t == d.conf.WarmUs {
			d.phase = PhaseStart
		}
	case PhaseStart:
		if t == d.conf.StartUs {
			d.phase = PhaseRun
		}
	case PhaseRun:
		if acquired || timeout {
			d.phase = PhaseIdle
		}
	}

	if shift {
		d.reg.shiftIn(bit)
	}
	d.counter.tick(counterReset, counterAdvance)
	d.timer.tick(timerReset)
	return res
}

// inShiftWindow reports whether a falling edge at bit count c shifts the
// classified bit into the buffer: counts 0..9 cover the two acknowledge
// edges plus the 8 humidity-integer bits, 18..25 the temperature-integer
// bits, and 34 upward the checksum byte.
func inShiftWindow(c int) bool {
	return c <= 9 || (c >= 18 && c <= 25) || c >= 34
}
