package sampler

import (
	"log"
	"time"

	"github.com/robotalks/dht.go/pkg/decode"
	fx "github.com/robotalks/dht.go/pkg/framework"
	pb "github.com/robotalks/dht.go/pkg/proto/dht/v1"
	"github.com/robotalks/dht.go/pkg/telemetry"
	"github.com/robotalks/dht.go/pkg/telemetry/env"
	"github.com/robotalks/dht.go/pkg/telemetry/msgs"
)

// Controller bridges the Sampler into the loop: it turns latched
// readings into events and answers status queries.
type Controller struct {
	Env     *env.SensorEnv
	Sampler *Sampler
	Verbose bool

	last    *pb.ReadingEvent
	pending []fx.Message
}

// NewController creates a Controller.
func NewController(e *env.SensorEnv, s *Sampler) *Controller {
	return &Controller{Env: e, Sampler: s}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.Add(c.Sampler)
	loop.AddController(fx.StageControl, c)
	loop.AddController(fx.StagePublish, fx.ControlFunc(c.publishReadings))
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *telemetry.CommandMsg:
			if _, ok := msg.Command.Msg().(*msgs.StatusQuery); ok {
				mctx.MessageTaken()
				msg.Command.Done(c.status())
			}
		case *readingMsg:
			mctx.MessageTaken()
			ev := &msgs.ReadingEvent{ReadingEvent: pb.ReadingEvent{
				Humidity:    uint32(msg.reading.Humidity),
				Temperature: uint32(msg.reading.Temperature),
				Checksum:    uint32(msg.reading.Checksum),
				ChecksumOk:  msg.reading.ChecksumOK(),
				Word:        msg.word,
				UnixMicros:  msg.at.UnixNano() / int64(time.Microsecond),
			}}
			c.last = &ev.ReadingEvent
			c.pending = append(c.pending, ev)
			if c.Verbose {
				log.Printf("Reading %s", msg.reading.String())
			}
		}
	}))
	return nil
}

func (c *Controller) publishReadings(cc fx.ControlContext) error {
	pending := c.pending
	c.pending = nil
	var errs fx.AggregatedError
	for _, ev := range pending {
		errs.Add(c.Env.Registrar.SendEvent(cc.Context(), ev))
	}
	return errs.Aggregate()
}

func (c *Controller) status() *msgs.Status {
	st := c.Sampler.Stats()
	return &msgs.Status{Status: pb.Status{
		Reading:        c.last,
		Acquisitions:   st.Acquisitions,
		Timeouts:       st.Timeouts,
		ChecksumErrors: st.ChecksumErrors,
	}}
}

type readingMsg struct {
	reading decode.Reading
	word    uint32
	at      time.Time
}

func (m *readingMsg) NewMessage() fx.Message { return &readingMsg{} }
