package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Message is the unit of work exchanged through the control loop.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}

// Controller defines logic invoked on every loop iteration.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc is the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc ControlContext) error {
	return f(cc)
}

// Stages of one loop iteration, executed in order. Sensors post fresh
// data first, controllers react, publishers push results out, and the
// idle stage sweeps up whatever nobody claimed.
const (
	StageSense int = iota
	StageControl
	StagePublish
	StageIdle

	Stages int = iota
)

// ControlContext provides the context of the current iteration to a
// controller.
type ControlContext interface {
	// Context retrieves the context.Context of the loop.
	Context() context.Context
	// Time is the start time of this iteration.
	Time() time.Time
	// Stage is the stage currently executing.
	Stage() int
	// Messages accesses the messages collected for this iteration.
	Messages() MessageStore
	// PostRun installs one-shot hooks after the current stage.
	PostRun(hooks ...Controller)

	LoopControl
}

// LoopControl exposes access to the controlling loop.
type LoopControl interface {
	// PostRunAt installs one-shot controller hooks after the given stage
	// of the next iteration.
	PostRunAt(stage int, hooks ...Controller)
	// PostMessage enqueues a message for the next iteration.
	PostMessage(Message)
	// TriggerNext schedules the next iteration immediately.
	TriggerNext()
}

// MessageStore provides access to the queued messages.
type MessageStore interface {
	// ProcessMessages lets a processor examine all queued messages;
	// untaken messages stay queued.
	ProcessMessages(MessageProcessor)
	// AddMessages appends messages for the next processing pass.
	AddMessages(msgs ...Message)
}

// MessageProcessor is used by MessageStore to process messages.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc is the func form of MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext provides context for the current message.
type MessageProcessingContext interface {
	// CurrentMessage gets the message being processed.
	CurrentMessage() Message
	// MessageTaken marks the message processed; it is removed from the
	// store.
	MessageTaken()
	// AddMessages appends messages for the next processing pass.
	AddMessages(msgs ...Message)
}
