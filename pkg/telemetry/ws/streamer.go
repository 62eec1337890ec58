package ws

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/dht.go/pkg/framework"
	"github.com/robotalks/dht.go/pkg/telemetry"
	"github.com/robotalks/dht.go/pkg/telemetry/msgs"
)

// EventsPath is the URL path serving the websocket endpoint.
const EventsPath = "/events"

// Streamer implements telemetry.Registrar over websocket.
// Events are fanned out to all connected clients, and commands from
// any client are posted into the loop.
type Streamer struct {
	ListenAddr string

	runCtx context.Context
	lock   sync.Mutex
	pipes  map[*telemetry.Pipe]struct{}
}

// NewStreamer creates a Streamer listening on addr.
func NewStreamer(addr string) *Streamer {
	return &Streamer{ListenAddr: addr, pipes: make(map[*telemetry.Pipe]struct{})}
}

// SendEvent implements Registrar.
func (s *Streamer) SendEvent(ctx context.Context, msg fx.Message) error {
	s.lock.Lock()
	pipes := make([]*telemetry.Pipe, 0, len(s.pipes))
	for p := range s.pipes {
		pipes = append(pipes, p)
	}
	s.lock.Unlock()
	var errs fx.AggregatedError
	for _, p := range pipes {
		errs.Add(p.SendEventMsg(msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (s *Streamer) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("ws-streamer", s))
}

// Run implements Runnable.
func (s *Streamer) Run(ctx context.Context) error {
	s.runCtx = ctx
	ln, err := net.Listen("tcp", s.ListenAddr)
	if err != nil {
		return err
	}
	glog.Infof("streaming on ws://%s%s", ln.Addr(), EventsPath)
	mux := http.NewServeMux()
	mux.Handle(EventsPath, websocket.Handler(s.serve))
	srv := &http.Server{Handler: mux}
	return fx.RunWithContextCloser(ctx, ln, func() error {
		if err := srv.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func (s *Streamer) serve(conn *websocket.Conn) {
	pipe := telemetry.NewPipe(New(conn))
	pipe.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		if !typed.IsCommand() {
			return nil
		}
		loopCtl := fx.LoopCtlFrom(ctx)
		if loopCtl == nil {
			return pipe.SendCommandMsg(msgs.NewCommandErr(msgs.ErrUnsupportedCommand), typed.Sequence)
		}
		loopCtl.PostMessage(&telemetry.CommandMsg{Command: &wsCommand{seq: typed.Sequence, msg: msg, pipe: pipe}})
		loopCtl.TriggerNext()
		return nil
	})
	s.lock.Lock()
	s.pipes[pipe] = struct{}{}
	s.lock.Unlock()
	defer func() {
		s.lock.Lock()
		delete(s.pipes, pipe)
		s.lock.Unlock()
	}()
	if err := pipe.Run(s.runCtx); err != nil && err != context.Canceled {
		glog.V(1).Infof("client %s gone: %v", conn.Request().RemoteAddr, err)
	}
}

type wsCommand struct {
	seq  uint32
	msg  fx.Message
	pipe *telemetry.Pipe
}

func (c *wsCommand) Msg() fx.Message {
	return c.msg
}

func (c *wsCommand) Done(msg fx.Message) error {
	return c.pipe.SendCommandMsg(msg, c.seq)
}
