package sampler

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/robotalks/dht.go/pkg/decode"
	fx "github.com/robotalks/dht.go/pkg/framework"
	"github.com/robotalks/dht.go/pkg/line"
)

// Stats counts acquisition outcomes.
type Stats struct {
	Acquisitions   uint64
	Timeouts       uint64
	ChecksumErrors uint64
}

// DefaultInterval is the pause between acquisitions. The sensor needs
// time to recover between reads.
const DefaultInterval = 2 * time.Second

// Sampler drives the decoder against a Line, one acquisition at a time.
// Paced mode spaces ticks on the wall clock for real hardware; otherwise
// the line is sampled in lockstep, one tick per Sample call.
type Sampler struct {
	Line     line.Line
	Interval time.Duration
	Paced    bool

	dec *decode.Decoder

	lock  sync.Mutex
	word  uint32
	have  bool
	stats Stats
}

// New creates a Sampler.
func New(l line.Line, conf decode.Config) *Sampler {
	return &Sampler{
		Line:     l,
		Interval: DefaultInterval,
		dec:      decode.New(conf),
	}
}

// PackWord packs a reading into the latched result word.
// Bit 0 flags a matching checksum.
func PackWord(r decode.Reading) uint32 {
	word := uint32(r.Humidity)<<24 | uint32(r.Temperature)<<16 | uint32(r.Checksum)<<8
	if r.ChecksumOK() {
		word |= 1
	}
	return word
}

// Latest returns the most recently latched result word.
func (s *Sampler) Latest() (uint32, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.word, s.have
}

// Stats returns a snapshot of the acquisition counters.
func (s *Sampler) Stats() Stats {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.stats
}

// AddToLoop implements LoopAdder.
func (s *Sampler) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("sampler", s))
}

// Run implements Runnable.
func (s *Sampler) Run(ctx context.Context) error {
	defer s.Line.Close()
	loopCtl := fx.LoopCtlFrom(ctx)
	interval := s.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	for {
		reading, ok, err := s.acquire(ctx)
		if err != nil {
			return err
		}
		at := time.Now()
		s.lock.Lock()
		s.stats.Acquisitions++
		var word uint32
		if ok {
			word = PackWord(reading)
			s.word, s.have = word, true
			if !reading.ChecksumOK() {
				s.stats.ChecksumErrors++
			}
		} else {
			s.stats.Timeouts++
		}
		s.lock.Unlock()
		if ok && loopCtl != nil {
			loopCtl.PostMessage(&readingMsg{reading: reading, word: word, at: at})
			loopCtl.TriggerNext()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// acquire runs the decoder through one full cycle: warm-up, start pulse,
// and either 42 edges or the watchdog. ok is false when the watchdog
// fired.
func (s *Sampler) acquire(ctx context.Context) (reading decode.Reading, ok bool, err error) {
	if s.Paced {
		// the bit windows are tens of microseconds wide; a GC pause
		// mid-acquisition loses edges.
		defer debug.SetGCPercent(debug.SetGCPercent(-1))
	}
	s.dec.Reset()
	pace := newPacer(s.dec.Config().TicksPerMicro)
	driving := false
	prev := s.dec.Phase()
	for n := 0; ; n++ {
		if n%1024 == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
			if !s.Paced {
				// stay cooperative in lockstep mode.
				time.Sleep(time.Millisecond)
			}
		}
		if s.Paced {
			pace.wait(n)
		}
		res := s.dec.Tick(s.Line.Sample())
		if res.DriveLow != driving {
			driving = res.DriveLow
			if err = s.Line.Drive(driving); err != nil {
				return
			}
		}
		if res.DataReady {
			return res.Reading, true, nil
		}
		cur := s.dec.Phase()
		if cur == decode.PhaseIdle && prev != decode.PhaseIdle {
			return // watchdog abandoned the acquisition
		}
		prev = cur
	}
}

// pacer spaces decoder ticks on the wall clock.
type pacer struct {
	start         time.Time
	ticksPerMicro int
}

func newPacer(ticksPerMicro int) *pacer {
	if ticksPerMicro <= 0 {
		ticksPerMicro = 1
	}
	return &pacer{start: time.Now(), ticksPerMicro: ticksPerMicro}
}

func (p *pacer) wait(n int) {
	target := p.start.Add(time.Duration(n) * time.Microsecond / time.Duration(p.ticksPerMicro))
	// busy wait: sleeping is far too coarse at this resolution.
	for time.Now().Before(target) {
	}
}
