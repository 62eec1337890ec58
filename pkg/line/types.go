// Package line abstracts the shared single-wire data line of the sensor.
package line

// Line is the shared data line as seen by the acquisition service. It is
// externally driven by the sensor, except while the decoder requests the
// initiating low pulse via Drive.
//
// Implementations are used from a single acquisition goroutine; they are
// not required to be safe for concurrent Sample calls.
type Line interface {
	// Sample returns the current line level, true for high.
	Sample() bool
	// Drive forces the line low (low=true) or releases it back to the
	// pull-up (low=false).
	Drive(low bool) error
	// Close releases the underlying resources.
	Close() error
}
