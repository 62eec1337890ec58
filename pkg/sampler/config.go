package sampler

import (
	"flag"
	"time"

	"github.com/robotalks/dht.go/pkg/decode"
	"github.com/robotalks/dht.go/pkg/line"
	"github.com/robotalks/dht.go/pkg/telemetry/env"
)

// Config defines the configurations for the acquisition controller.
type Config struct {
	Pin      string
	Sim      bool
	Interval time.Duration
	Verbose  bool
}

var defaultConfig = Config{
	Pin:      "GPIO4",
	Interval: DefaultInterval,
}

// simTimings shrinks the warm-up and watchdog so a simulated sensor
// responds promptly without wall-clock pacing.
var simTimings = decode.Config{
	TicksPerMicro: 1,
	StartUs:       1200,
	WarmUs:        1500,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Pin, "pin", defaultConfig.Pin, "GPIO pin wired to the sensor data line.")
	flag.BoolVar(&defaultConfig.Sim, "sim", defaultConfig.Sim, "Use a simulated sensor instead of GPIO.")
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Pause between acquisitions.")
	flag.BoolVar(&defaultConfig.Verbose, "verbose", defaultConfig.Verbose, "Print readings.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewController creates a controller using the config.
func (c *Config) NewController(e *env.SensorEnv) (*Controller, error) {
	var s *Sampler
	if c.Sim {
		sim := line.NewSim(line.SimConfig{
			TicksPerMicro: simTimings.TicksPerMicro,
			Humidity:      42,
			Temperature:   23,
			Wander:        true,
		})
		s = New(sim, simTimings)
	} else {
		gp, err := line.OpenGPIO(c.Pin)
		if err != nil {
			return nil, err
		}
		s = New(gp, decode.Default())
		s.Paced = true
	}
	s.Interval = c.Interval
	ctl := NewController(e, s)
	ctl.Verbose = c.Verbose
	return ctl, nil
}
