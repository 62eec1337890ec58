package telemetry

import (
	"context"

	fx "github.com/robotalks/dht.go/pkg/framework"
)

// Registrar registers a sensor daemon to a registry.
// It integrates with framework and helps a sensor daemon to
// easily process messages.
type Registrar interface {
	// SendEvent sends an event to connected clients.
	SendEvent(context.Context, fx.Message) error
}

// Command represents a received command to be processed.
type Command interface {
	Msg() fx.Message
	Done(fx.Message) error
}

// CommandMsg wraps a Command as a Message.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// SensorRef is a reference to a registered sensor.
type SensorRef struct {
	// Type is the sensor type (e.g. dht11).
	Type string
	// ID is unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r SensorRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates SensorRef is valid.
func (r SensorRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// SensorMeta provides metadata for a sensor.
type SensorMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// SensorInfo provides information of a registered sensor.
type SensorInfo struct {
	Ref  SensorRef
	Meta SensorMeta
}

// Connector is used by client components to connect to a sensor.
type Connector interface {
	// Discover enumerates registered sensors.
	Discover(context.Context) ([]SensorInfo, error)
	// Connect connects to the specified sensor.
	Connect(context.Context, SensorRef) (SensorConn, error)
}

// SensorConn is the connection to a sensor.
type SensorConn interface {
	// DoCommand executes a command.
	DoCommand(fx.Message) CommandFuture
}

// Result represents result of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture is the future of sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}
