package line

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var hostInit sync.Once

// GPIO implements Line on a real pin via periph.io. The pin floats as an
// input with pull-up while listening and switches to a driven-low output
// for the start pulse.
type GPIO struct {
	pin gpio.PinIO
}

// OpenGPIO opens the named pin (e.g. "GPIO4") as the sensor line.
func OpenGPIO(name string) (*GPIO, error) {
	var err error
	hostInit.Do(func() {
		_, err = host.Init()
	})
	if err != nil {
		return nil, fmt.Errorf("host init error: %v", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %q", name)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("pin %q in error: %v", name, err)
	}
	return &GPIO{pin: pin}, nil
}

// Sample implements Line.
func (g *GPIO) Sample() bool {
	return bool(g.pin.Read())
}

// Drive implements Line.
func (g *GPIO) Drive(low bool) error {
	if low {
		return g.pin.Out(gpio.Low)
	}
	return g.pin.In(gpio.PullUp, gpio.NoEdge)
}

// Close implements Line.
func (g *GPIO) Close() error {
	return g.pin.Halt()
}
