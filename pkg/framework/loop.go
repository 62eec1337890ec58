package framework

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Loop runs sensors, controllers and publishers in staged iterations.
// Iterations fire at a fixed interval or immediately via TriggerNext.
type Loop struct {
	Interval time.Duration

	stages  [Stages]stage
	runners []Runnable

	msgs []Message
	lock sync.Mutex

	wakeUpCh chan struct{}
}

// LoopAdder provides specific logic to add components to a loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

// DefaultInterval is the iteration interval used when none is set.
const DefaultInterval = 100 * time.Millisecond

type stage struct {
	controllers []Controller
	hooks       []Controller
	lock        sync.Mutex
}

type loopCtl struct {
	*Loop
}

var loopCtxKey = &Loop{}

// LoopCtlFrom gets LoopControl from a context, or nil when the context
// does not belong to a running loop.
func LoopCtlFrom(ctx context.Context) LoopControl {
	if ctl, ok := ctx.Value(loopCtxKey).(LoopControl); ok {
		return ctl
	}
	return nil
}

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: DefaultInterval, wakeUpCh: make(chan struct{}, 1)}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers at a stage.
func (l *Loop) AddController(stg int, ctls ...Controller) *Loop {
	s := &l.stages[stg]
	s.controllers = append(s.controllers, ctls...)
	for _, ctl := range ctls {
		if runner, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementations.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	if l.wakeUpCh == nil {
		l.wakeUpCh = make(chan struct{}, 1)
	}

	runner := NewRunnerWith(context.WithValue(ctx, loopCtxKey, &loopCtl{l}))
	runner.Go(l.runners...)
	defer runner.Wait()

	interval := l.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.runIteration(ctx)
		case <-l.wakeUpCh:
			l.runIteration(ctx)
		}
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := l.Run(context.Background()); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}

// PostRunAt implements LoopControl.
func (l *Loop) PostRunAt(stg int, hooks ...Controller) {
	s := &l.stages[stg]
	s.lock.Lock()
	s.hooks = append(s.hooks, hooks...)
	s.lock.Unlock()
}

// PostMessage implements LoopControl.
func (l *Loop) PostMessage(msg Message) {
	l.lock.Lock()
	l.msgs = append(l.msgs, msg)
	l.lock.Unlock()
}

// TriggerNext implements LoopControl.
func (l *Loop) TriggerNext() {
	select {
	case l.wakeUpCh <- struct{}{}:
	default:
	}
}

func (l *Loop) runIteration(ctx context.Context) {
	iter := &iteration{loopCtl: loopCtl{l}, time: time.Now()}
	l.lock.Lock()
	iter.msgs, l.msgs = l.msgs, nil
	l.lock.Unlock()
	iter.ctx = context.WithValue(ctx, loopCtxKey, iter)
	for stg := 0; stg < Stages; stg++ {
		iter.stage = stg
		l.stages[stg].run(iter)
	}
}

func (s *stage) run(iter *iteration) {
	runControllers(iter, s.controllers)
	s.lock.Lock()
	hooks := s.hooks
	s.hooks = nil
	s.lock.Unlock()
	runControllers(iter, hooks)
}

func runControllers(iter *iteration, ctls []Controller) {
	for _, ctl := range ctls {
		if err := ctl.Control(iter); err != nil {
			glog.Errorf("controller error: %v", err)
		}
	}
}

// iteration implements ControlContext and MessageStore.
type iteration struct {
	loopCtl
	ctx   context.Context
	time  time.Time
	stage int
	msgs  []Message
}

func (t *iteration) Context() context.Context { return t.ctx }
func (t *iteration) Time() time.Time          { return t.time }
func (t *iteration) Stage() int               { return t.stage }
func (t *iteration) Messages() MessageStore   { return t }

func (t *iteration) PostRun(hooks ...Controller) {
	t.PostRunAt(t.stage, hooks...)
}

func (t *iteration) ProcessMessages(proc MessageProcessor) {
	pending := t.msgs
	t.msgs = nil
	var kept []Message
	for _, msg := range pending {
		mc := &messageContext{iter: t, msg: msg}
		proc.ProcessMessage(mc)
		if !mc.taken {
			kept = append(kept, msg)
		}
	}
	// messages added while processing queue up behind the kept ones
	t.msgs = append(kept, t.msgs...)
}

func (t *iteration) AddMessages(msgs ...Message) {
	t.msgs = append(t.msgs, msgs...)
}

type messageContext struct {
	iter  *iteration
	msg   Message
	taken bool
}

func (c *messageContext) CurrentMessage() Message     { return c.msg }
func (c *messageContext) MessageTaken()               { c.taken = true }
func (c *messageContext) AddMessages(msgs ...Message) { c.iter.AddMessages(msgs...) }
