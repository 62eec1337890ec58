package line

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/dht.go/pkg/decode"
)

func simTestConfig() decode.Config {
	return decode.Config{TicksPerMicro: 1, StartUs: 1200, WarmUs: 1500}
}

// tickLockstep runs decoder and simulated sensor on the same tick base,
// relaying the decoder's drive request onto the line.
func tickLockstep(d *decode.Decoder, s *Sim, ticks int) []decode.Reading {
	var out []decode.Reading
	drive := false
	for i := 0; i < ticks; i++ {
		level := s.Sample()
		if drive {
			level = false
		}
		res := d.Tick(level)
		if res.DriveLow != drive {
			drive = res.DriveLow
			s.Drive(drive)
		}
		if res.DataReady {
			out = append(out, res.Reading)
		}
	}
	return out
}

func TestSimDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name        string
		humidity    uint8
		temperature uint8
	}{
		{name: "typical", humidity: 0x32, temperature: 0x18},
		{name: "zero", humidity: 0, temperature: 0},
		{name: "max bytes", humidity: 0xff, temperature: 0xff},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSim(SimConfig{Humidity: tc.humidity, Temperature: tc.temperature})
			d := decode.New(simTestConfig())
			readings := tickLockstep(d, s, 8000)
			require.Len(t, readings, 1)
			require.Equal(t, tc.humidity, readings[0].Humidity)
			require.Equal(t, tc.temperature, readings[0].Temperature)
			require.True(t, readings[0].ChecksumOK())
			require.Equal(t, 1, s.Responses())
		})
	}
}

func TestSimCorruptChecksum(t *testing.T) {
	s := NewSim(SimConfig{Humidity: 0x30, Temperature: 0x19, CorruptChecksum: true})
	d := decode.New(simTestConfig())
	readings := tickLockstep(d, s, 8000)
	require.Len(t, readings, 1)
	require.False(t, readings[0].ChecksumOK())
	require.Equal(t, uint8(0x30), readings[0].Humidity)
}

func TestSimStallTriggersWatchdog(t *testing.T) {
	s := NewSim(SimConfig{Humidity: 0x40, Temperature: 0x20, StallAfterEdges: 10})
	d := decode.New(simTestConfig())
	readings := tickLockstep(d, s, 12000)
	require.Empty(t, readings, "stalled acquisition must not produce a reading")
	// the watchdog must have restarted the cycle: more than one start
	// pulse reached the sensor.
	require.Greater(t, s.Responses(), 1)
}

func TestSimWander(t *testing.T) {
	s := NewSim(SimConfig{Humidity: 0x32, Temperature: 0x18, Wander: true})
	d := decode.New(simTestConfig())
	readings := tickLockstep(d, s, 14000)
	require.Len(t, readings, 2)
	require.Equal(t, uint8(0x32), readings[0].Humidity)
	require.NotEqual(t, readings[0].Humidity, readings[1].Humidity)
	require.True(t, readings[1].ChecksumOK())
}

func TestSimWanderBounds(t *testing.T) {
	s := NewSim(SimConfig{Humidity: 94, Temperature: 49, Wander: true})
	for i := 0; i < 600; i++ {
		s.responses++
		s.wander()
		require.True(t, s.conf.Humidity >= 20 && s.conf.Humidity <= 95,
			"humidity out of range: %d", s.conf.Humidity)
		require.LessOrEqual(t, s.conf.Temperature, uint8(50),
			"temperature wrapped: %d", s.conf.Temperature)
	}
}

func TestSimIgnoresShortPulse(t *testing.T) {
	s := NewSim(SimConfig{Humidity: 1, Temperature: 2})
	require.NoError(t, s.Drive(true))
	for i := 0; i < 10; i++ {
		require.False(t, s.Sample())
	}
	require.NoError(t, s.Drive(false))
	for i := 0; i < 500; i++ {
		require.True(t, s.Sample(), "short pulse must not trigger a response")
	}
	require.Zero(t, s.Responses())
}
