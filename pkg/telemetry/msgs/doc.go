// Package msgs provides the telemetry protocol support and all message
// schemas.
package msgs

// The telemetry protocol is communicated between a sensor daemon and
// its clients (monitors, shells), and uses hardware-agnostic
// primitives.
//
// Producer: sensor daemon
// Consumer: monitoring clients
