package msgs

import (
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/dht.go/pkg/framework"
	pb "github.com/robotalks/dht.go/pkg/proto/dht/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// ReadingEvent reports one decoded reading.
type ReadingEvent struct {
	pb.ReadingEvent
}

// NewMessage implements Message.
func (m *ReadingEvent) NewMessage() fx.Message { return &ReadingEvent{} }

// TypeID implements SerializableMessage.
func (m *ReadingEvent) TypeID() uint32 { return ReadingEventTypeID }

// Serializable implements SerializableMessage.
func (m *ReadingEvent) Serializable() proto.Message { return &m.ReadingEvent }

// Summary renders the reading for display.
func (m *ReadingEvent) Summary() string {
	state := "ok"
	if !m.ChecksumOk {
		state = "BAD CHECKSUM"
	}
	return fmt.Sprintf("%d%%RH %dC sum=%02x %s", m.Humidity, m.Temperature, m.Checksum, state)
}

// StatusQuery command.
type StatusQuery struct {
	pb.StatusQuery
}

// NewMessage implements Message.
func (m *StatusQuery) NewMessage() fx.Message { return &StatusQuery{} }

// TypeID implements SerializableMessage.
func (m *StatusQuery) TypeID() uint32 { return StatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StatusQuery) Serializable() proto.Message { return &m.StatusQuery }

// Status response.
type Status struct {
	pb.Status
}

// NewMessage implements Message.
func (m *Status) NewMessage() fx.Message { return &Status{} }

// TypeID implements SerializableMessage.
func (m *Status) TypeID() uint32 { return StatusTypeID }

// Serializable implements SerializableMessage.
func (m *Status) Serializable() proto.Message { return &m.Status }

// Summary renders the counters and last reading on one line.
func (m *Status) Summary() string {
	last := "none"
	if m.Reading != nil {
		last = (&ReadingEvent{ReadingEvent: *m.Reading}).Summary()
	}
	return fmt.Sprintf("acquisitions=%d timeouts=%d checksum-errors=%d last: %s",
		m.Acquisitions, m.Timeouts, m.ChecksumErrors, last)
}

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupSensor  uint32 = 0x00010000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID    uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID   uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	ReadingEventTypeID uint32 = TypeIDKindEvent | GroupSensor | 0x0000
	StatusQueryTypeID  uint32 = GroupSensor | 0x0001
	StatusTypeID       uint32 = StatusQueryTypeID | TypeIDMaskReply
)

var (
	// ErrUnknownCommand indicates the command is unknown.
	ErrUnknownCommand = errors.New("unknown command")
)
