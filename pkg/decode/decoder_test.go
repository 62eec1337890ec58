package decode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test timings, scaled down from the hardware defaults to keep runs
// short. startUs still exceeds the longest legal inter-edge interval
// (the 160us sensor response).
const (
	testWarmUs  = 600
	testStartUs = 400
)

func testConfig() Config {
	return Config{TicksPerMicro: 1, StartUs: testStartUs, WarmUs: testWarmUs}
}

// waveform is a sequence of line levels with microsecond durations,
// played back one level per tick. Beyond the last segment the line
// floats high (pull-up).
type waveform struct {
	levels []bool
}

func newWaveform() *waveform {
	return &waveform{}
}

func (w *waveform) level(lv bool, us int) *waveform {
	for i := 0; i < us; i++ {
		w.levels = append(w.levels, lv)
	}
	return w
}

func (w *waveform) high(us int) *waveform { return w.level(true, us) }
func (w *waveform) low(us int) *waveform  { return w.level(false, us) }

// bits appends DHT11 data bits: 50us low, then 26us (0) or 70us (1) high.
func (w *waveform) bits(bytes ...uint8) *waveform {
	for _, b := range bytes {
		for i := 7; i >= 0; i-- {
			w.low(50)
			if b&(1<<uint(i)) != 0 {
				w.high(70)
			} else {
				w.high(26)
			}
		}
	}
	return w
}

func (w *waveform) at(pos int) bool {
	if pos < len(w.levels) {
		return w.levels[pos]
	}
	return true
}

// sensorWave builds a full DHT11 response for the given transmitted
// bytes: bus-release gap, 80+80us response, 40 data bits (humidity
// integer, humidity decimal, temperature integer, temperature decimal,
// checksum), trailing low, release.
func sensorWave(humidity, temperature, checksum uint8) *waveform {
	return newWaveform().
		high(32).
		low(80).high(80).
		bits(humidity, 0, temperature, 0, checksum).
		low(54)
}

// play feeds the decoder one tick per microsecond, emulating the shared
// line: the level is low while the decoder drives it, the sensor
// waveform starts when the start pulse is released, and the line floats
// high otherwise. obs, when set, sees every tick result.
func play(d *Decoder, sensor *waveform, ticks int, obs func(i int, res TickResult)) {
	var drive, released bool
	pos := 0
	for i := 0; i < ticks; i++ {
		level := true
		if drive {
			level = false
		} else if released && sensor != nil {
			level = sensor.at(pos)
			pos++
		}
		res := d.Tick(level)
		if drive && !res.DriveLow {
			released = true
		}
		drive = res.DriveLow
		if obs != nil {
			obs(i, res)
		}
	}
}

func collectReady(d *Decoder, sensor *waveform, ticks int) []Reading {
	var out []Reading
	play(d, sensor, ticks, func(_ int, res TickResult) {
		if res.DataReady {
			out = append(out, res.Reading)
		}
	})
	return out
}

func TestWarmUpToStart(t *testing.T) {
	d := New(testConfig())
	// warm-up holds PhaseIdle while t climbs to WarmUs, then the very
	// next tick enters PhaseStart and asserts DriveLow, never skipping.
	for i := 0; i <= testWarmUs; i++ {
		require.Equalf(t, PhaseIdle, d.Phase(), "tick %d", i)
		res := d.Tick(true)
		require.Falsef(t, res.DriveLow, "tick %d", i)
		require.Falsef(t, res.DataReady, "tick %d", i)
	}
	require.Equal(t, PhaseStart, d.Phase())
	res := d.Tick(true)
	require.True(t, res.DriveLow)
}

func TestStartToRunDuration(t *testing.T) {
	d := New(testConfig())
	driveTicks := 0
	play(d, nil, testWarmUs+testStartUs+10, func(_ int, res TickResult) {
		if res.DriveLow {
			driveTicks++
		}
	})
	require.Equal(t, PhaseRun, d.Phase())
	// one DriveLow tick per microsecond of the start pulse, inclusive
	// of the rebase tick.
	require.Equal(t, testStartUs+1, driveTicks)
}

func TestWatchdog(t *testing.T) {
	d := New(testConfig())
	sawRun, sawRecovery := false, false
	ready := 0
	// no sensor: the line floats high after the start pulse and the
	// watchdog must abort the acquisition with no ready pulse, then a
	// fresh warm-up must lead back to PhaseStart.
	play(d, nil, 4*(testWarmUs+testStartUs), func(_ int, res TickResult) {
		if res.DataReady {
			ready++
		}
		switch d.Phase() {
		case PhaseRun:
			sawRun = true
		case PhaseStart:
			if sawRun {
				sawRecovery = true
			}
		}
	})
	require.True(t, sawRun, "never entered PhaseRun")
	require.True(t, sawRecovery, "watchdog did not restart the cycle")
	require.Zero(t, ready)
}

func TestStartExceedsWarm(t *testing.T) {
	// a start pulse longer than the warm-up must still complete: the
	// timer has to count up to StartUs even though it rebases against
	// WarmUs in PhaseIdle.
	d := New(Config{TicksPerMicro: 1, StartUs: 800, WarmUs: 500})
	droveLow, sawRun := false, false
	play(d, nil, 3000, func(_ int, res TickResult) {
		if res.DriveLow {
			droveLow = true
		}
		if d.Phase() == PhaseRun {
			sawRun = true
		}
	})
	require.True(t, droveLow)
	require.True(t, sawRun, "wedged before reaching PhaseRun")
}

func TestDecodeReading(t *testing.T) {
	testCases := []struct {
		name        string
		humidity    uint8
		temperature uint8
		checksum    uint8
		ok          bool
	}{
		{name: "typical", humidity: 0x32, temperature: 0x18, checksum: 0x4a, ok: true},
		{name: "zero", humidity: 0, temperature: 0, checksum: 0, ok: true},
		{name: "all ones", humidity: 0xff, temperature: 0xff, checksum: 0xfe, ok: true},
		{name: "checksum wraps", humidity: 0x90, temperature: 0x85, checksum: 0x15, ok: true},
		{name: "corrupted checksum", humidity: 0x32, temperature: 0x18, checksum: 0x4b, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := New(testConfig())
			readings := collectReady(d, sensorWave(tc.humidity, tc.temperature, tc.checksum), 9000)
			require.Len(t, readings, 1, "expect exactly one ready pulse")
			r := readings[0]
			require.Equal(t, tc.humidity, r.Humidity)
			require.Equal(t, tc.temperature, r.Temperature)
			require.Equal(t, tc.checksum, r.Checksum)
			require.Equal(t, tc.ok, r.ChecksumOK())
		})
	}
}

func TestRangeInvariants(t *testing.T) {
	d := New(testConfig())
	play(d, sensorWave(0x5a, 0x21, 0x7b), 12000, func(i int, _ TickResult) {
		el, c := d.Elapsed(), d.BitCount()
		require.GreaterOrEqualf(t, el, 0, "tick %d", i)
		require.LessOrEqualf(t, el, testWarmUs, "tick %d", i)
		require.GreaterOrEqualf(t, c, 0, "tick %d", i)
		require.LessOrEqualf(t, c, MaxBits, "tick %d", i)
	})
}

func TestCounterSaturatesAfterReady(t *testing.T) {
	d := New(testConfig())
	ready := 0
	bitsAtReady, phaseAfterReady := -1, PhaseRun
	play(d, sensorWave(0x10, 0x20, 0x30), 9000, func(_ int, res TickResult) {
		if res.DataReady {
			ready++
			bitsAtReady = d.BitCount()
			phaseAfterReady = d.Phase()
		}
	})
	require.Equal(t, 1, ready)
	require.Equal(t, MaxBits, bitsAtReady)
	require.Equal(t, PhaseIdle, phaseAfterReady)
}

func TestResetForcesIdle(t *testing.T) {
	d := New(testConfig())
	// stop mid-acquisition at an arbitrary tick
	play(d, sensorWave(0x40, 0x19, 0x59), testWarmUs+testStartUs+700, nil)
	require.Equal(t, PhaseRun, d.Phase())
	require.NotZero(t, d.BitCount())

	d.Reset()
	require.Equal(t, PhaseIdle, d.Phase())
	require.Zero(t, d.Elapsed())
	require.Zero(t, d.BitCount())
	require.Zero(t, d.Buffer())
}

func TestDeterministicReplay(t *testing.T) {
	wave := sensorWave(0x37, 0x16, 0x4d)
	const ticks = 9000

	run := func(d *Decoder) []TickResult {
		out := make([]TickResult, 0, ticks)
		play(d, wave, ticks, func(_ int, res TickResult) {
			out = append(out, res)
		})
		return out
	}

	d := New(testConfig())
	first := run(d)
	d.Reset()
	second := run(d)
	require.Equal(t, first, second)
}

func TestShiftWindows(t *testing.T) {
	// the enable windows must stay in lock-step with the 24-bit buffer
	// discarding the two acknowledge bits; 26 shifted bits per
	// acquisition in total.
	shifted := 0
	for c := 0; c < MaxBits; c++ {
		if inShiftWindow(c) {
			shifted++
		}
	}
	require.Equal(t, 26, shifted)
	for _, c := range []int{0, 9, 18, 25, 34, 41} {
		require.Truef(t, inShiftWindow(c), "c=%d", c)
	}
	for _, c := range []int{10, 17, 26, 33} {
		require.Falsef(t, inShiftWindow(c), "c=%d", c)
	}
}
