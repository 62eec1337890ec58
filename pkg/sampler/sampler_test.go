package sampler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/dht.go/pkg/decode"
	"github.com/robotalks/dht.go/pkg/line"
)

func TestAcquire(t *testing.T) {
	sim := line.NewSim(line.SimConfig{
		TicksPerMicro: simTimings.TicksPerMicro,
		Humidity:      0x32,
		Temperature:   0x18,
	})
	s := New(sim, simTimings)
	reading, ok, err := s.acquire(context.TODO())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint8(0x32), reading.Humidity)
	require.Equal(t, uint8(0x18), reading.Temperature)
	require.True(t, reading.ChecksumOK())
}

func TestAcquireWatchdog(t *testing.T) {
	sim := line.NewSim(line.SimConfig{
		TicksPerMicro:   simTimings.TicksPerMicro,
		Humidity:        0x32,
		Temperature:     0x18,
		StallAfterEdges: 10,
	})
	s := New(sim, simTimings)
	_, ok, err := s.acquire(context.TODO())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAcquireCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()
	sim := line.NewSim(line.SimConfig{TicksPerMicro: 1})
	s := New(sim, simTimings)
	_, _, err := s.acquire(ctx)
	require.Equal(t, context.Canceled, err)
}

func TestRunLatchesWord(t *testing.T) {
	sim := line.NewSim(line.SimConfig{
		TicksPerMicro: simTimings.TicksPerMicro,
		Humidity:      0x32,
		Temperature:   0x18,
	})
	s := New(sim, simTimings)
	s.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.TODO())
	doneCh := make(chan error, 1)
	go func() { doneCh <- s.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for {
		if word, have := s.Latest(); have {
			require.Equal(t, uint32(0x32)<<24|uint32(0x18)<<16|uint32(0x4a)<<8|1, word)
			break
		}
		select {
		case <-deadline:
			t.Fatal("no reading latched")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	require.Equal(t, context.Canceled, <-doneCh)

	st := s.Stats()
	require.NotZero(t, st.Acquisitions)
	require.Zero(t, st.ChecksumErrors)
}

func TestRunCountsChecksumErrors(t *testing.T) {
	sim := line.NewSim(line.SimConfig{
		TicksPerMicro:   simTimings.TicksPerMicro,
		Humidity:        0x32,
		Temperature:     0x18,
		CorruptChecksum: true,
	})
	s := New(sim, simTimings)
	s.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.TODO())
	doneCh := make(chan error, 1)
	go func() { doneCh <- s.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for {
		if word, have := s.Latest(); have {
			require.Zero(t, word&1)
			break
		}
		select {
		case <-deadline:
			t.Fatal("no reading latched")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-doneCh

	require.NotZero(t, s.Stats().ChecksumErrors)
}

func TestPackWord(t *testing.T) {
	testCases := []struct {
		name    string
		reading decode.Reading
		expect  uint32
	}{
		{"checksum ok", decode.Reading{Humidity: 0x32, Temperature: 0x18, Checksum: 0x4a}, 0x32184a01},
		{"checksum bad", decode.Reading{Humidity: 0x32, Temperature: 0x18, Checksum: 0x4b}, 0x32184b00},
		{"wraparound sum", decode.Reading{Humidity: 0xff, Temperature: 0x02, Checksum: 0x01}, 0xff020101},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, PackWord(tc.reading))
		})
	}
}
