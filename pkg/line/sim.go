package line

import "sync"

// DHT11 waveform timings in microseconds.
const (
	simReleaseUs  = 30 // pull-up gap between start pulse and response
	simResponseUs = 80 // response low and high, each
	simBitLowUs   = 50
	simBit0Us     = 26
	simBit1Us     = 70
	simTrailUs    = 54

	// minimum start pulse the simulated sensor accepts; real parts wake
	// on much shorter pulses than the 18ms the datasheet asks for.
	simMinStartUs = 1000
)

// SimConfig configures the simulated sensor.
type SimConfig struct {
	// TicksPerMicro must match the decoder sampling the line.
	TicksPerMicro int
	// Humidity and Temperature are the bytes to transmit.
	Humidity    uint8
	Temperature uint8
	// CorruptChecksum transmits checksum+1 to exercise the mismatch path.
	CorruptChecksum bool
	// StallAfterEdges, when positive, releases the line for good after
	// that many falling edges, leaving the acquisition to the watchdog.
	StallAfterEdges int
	// Wander slowly walks humidity and temperature between acquisitions
	// so consecutive readings differ.
	Wander bool
}

// Sim simulates a DHT11 sensor. Time advances one tick per Sample call,
// so it must be sampled in lockstep with the decoder it feeds.
type Sim struct {
	lock sync.Mutex
	conf SimConfig

	driven      bool
	drivenTicks int
	wave        []bool
	pos         int
	step        int // wander direction
	responses   int
}

// NewSim creates a simulated sensor.
func NewSim(conf SimConfig) *Sim {
	if conf.TicksPerMicro <= 0 {
		conf.TicksPerMicro = 1
	}
	return &Sim{conf: conf, step: 1}
}

// SetReading replaces the transmitted bytes.
func (s *Sim) SetReading(humidity, temperature uint8) {
	s.lock.Lock()
	s.conf.Humidity, s.conf.Temperature = humidity, temperature
	s.lock.Unlock()
}

// Responses returns how many response waveforms were played.
func (s *Sim) Responses() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.responses
}

// Sample implements Line.
func (s *Sim) Sample() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.driven {
		s.drivenTicks++
		return false
	}
	if s.wave != nil {
		lv := s.wave[s.pos]
		s.pos++
		if s.pos >= len(s.wave) {
			s.wave = nil
		}
		return lv
	}
	return true
}

// Drive implements Line. Releasing after a sufficiently long low pulse
// triggers the response waveform.
func (s *Sim) Drive(low bool) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if low {
		if !s.driven {
			s.driven, s.drivenTicks = true, 0
			s.wave = nil
		}
		return nil
	}
	if s.driven && s.drivenTicks >= simMinStartUs*s.conf.TicksPerMicro {
		s.wave, s.pos = s.buildWave(), 0
		s.responses++
		if s.conf.Wander {
			s.wander()
		}
	}
	s.driven = false
	return nil
}

// Close implements Line.
func (s *Sim) Close() error {
	return nil
}

func (s *Sim) wander() {
	h := int(s.conf.Humidity) + s.step
	if h < 20 || h > 95 {
		s.step = -s.step
		h = int(s.conf.Humidity) + s.step
	}
	s.conf.Humidity = uint8(h)
	if s.responses%3 == 0 {
		c := int(s.conf.Temperature) + s.step
		if c >= 0 && c <= 50 {
			s.conf.Temperature = uint8(c)
		}
	}
}

// buildWave renders the full response as one level per tick: release
// gap, 80+80us response, 40 data bits (humidity integer, zero decimal,
// temperature integer, zero decimal, checksum), trailing low. A stall
// cuts the waveform at the configured falling edge.
func (s *Sim) buildWave() []bool {
	sum := s.conf.Humidity + s.conf.Temperature
	if s.conf.CorruptChecksum {
		sum++
	}

	w := waveBuilder{ticksPerMicro: s.conf.TicksPerMicro, stallAfter: s.conf.StallAfterEdges}
	w.high(simReleaseUs)
	w.low(simResponseUs)
	w.high(simResponseUs)
	for _, b := range []uint8{s.conf.Humidity, 0, s.conf.Temperature, 0, sum} {
		for i := 7; i >= 0; i-- {
			w.low(simBitLowUs)
			if b&(1<<uint(i)) != 0 {
				w.high(simBit1Us)
			} else {
				w.high(simBit0Us)
			}
		}
	}
	w.low(simTrailUs)
	return w.levels
}

type waveBuilder struct {
	ticksPerMicro int
	stallAfter    int

	levels  []bool
	last    bool
	edges   int
	stalled bool
	started bool
}

func (w *waveBuilder) high(us int) { w.add(true, us) }
func (w *waveBuilder) low(us int)  { w.add(false, us) }

func (w *waveBuilder) add(level bool, us int) {
	if w.stalled {
		return
	}
	if w.started && w.last && !level {
		w.edges++
		if w.stallAfter > 0 && w.edges > w.stallAfter {
			w.stalled = true
			return
		}
	}
	w.started, w.last = true, level
	for i := 0; i < us*w.ticksPerMicro; i++ {
		w.levels = append(w.levels, level)
	}
}
