package env

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/denisbrodbeck/machineid"

	fx "github.com/robotalks/dht.go/pkg/framework"
	"github.com/robotalks/dht.go/pkg/telemetry"
	"github.com/robotalks/dht.go/pkg/telemetry/mqtt"
	"github.com/robotalks/dht.go/pkg/telemetry/ws"
)

// SensorConfig provides common options to setup an env for sensor daemons.
type SensorConfig struct {
	Info telemetry.SensorInfo

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	// WSListenAddr enables streaming events over websocket when set.
	// e.g. :8180
	WSListenAddr string
}

var defaultSensorConfig = SensorConfig{
	MQTTBrokerURL: "mqtt://localhost:1883/dht/",
}

func init() {
	if val := os.Getenv("DHT_MQTT_URL"); val != "" {
		defaultSensorConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("DHT_WS_LISTEN"); val != "" {
		defaultSensorConfig.WSListenAddr = val
	}
	defaultSensorConfig.Info.Ref.ID = defaultSensorID()
}

// defaultSensorID derives a stable default ID so a sensor keeps its
// identity across restarts without one being configured. -id still
// overrides it.
func defaultSensorID() string {
	if id, err := machineid.ID(); err == nil {
		return id
	}
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	return host
}

// SetupSensorFlags sets command line flags.
func SetupSensorFlags() {
	flag.StringVar(&defaultSensorConfig.Info.Ref.Type, "type", defaultSensorConfig.Info.Ref.Type, "Sensor type")
	flag.StringVar(&defaultSensorConfig.Info.Ref.ID, "id", defaultSensorConfig.Info.Ref.ID, "Sensor ID")
	flag.StringVar(&defaultSensorConfig.MQTTBrokerURL, "mqtt", defaultSensorConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultSensorConfig.WSListenAddr, "listen", defaultSensorConfig.WSListenAddr, "Websocket listen address for streaming events")
}

// DefaultSensor gets default config.
func DefaultSensor() *SensorConfig {
	return &defaultSensorConfig
}

// SetSensorType should be called in init with basic info about the sensor.
func SetSensorType(typ string, meta telemetry.SensorMeta) {
	defaultSensorConfig.Info.Ref.Type = typ
	defaultSensorConfig.Info.Meta = meta
}

// SensorEnv is the env for sensor daemons.
type SensorEnv struct {
	Config       *SensorConfig
	RegistryURLs []string
	Registrar    *telemetry.RegistrarMux
}

// NewSensorConfig creates a SensorConfig with default configurations.
func NewSensorConfig() *SensorConfig {
	conf := defaultSensorConfig
	return &conf
}

// NewEnv creates SensorEnv from config.
func (c *SensorConfig) NewEnv() (*SensorEnv, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("sensor type and id must be specified")
	}
	env := &SensorEnv{
		Config:    c,
		Registrar: &telemetry.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		env.Registrar.Add(reg)
		env.RegistryURLs = append(env.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.WSListenAddr != "" {
		env.Registrar.Add(ws.NewStreamer(c.WSListenAddr))
	}
	if len(env.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return env, nil
}

// MustNewEnv creates SensorEnv and fails on error.
func (c *SensorConfig) MustNewEnv() *SensorEnv {
	env, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

// AddToLoop adds controllers/runners to loop.
func (e *SensorEnv) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&telemetry.UnsupportedCommands{})
}
