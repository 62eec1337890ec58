package env

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/robotalks/dht.go/pkg/telemetry"
	"github.com/robotalks/dht.go/pkg/telemetry/mqtt"
)

// ConnectorConfig provides common options to setup Connectors.
type ConnectorConfig struct {
	Ref telemetry.SensorRef

	// RegistryURL specifies the URL of sensor registry.
	// e.g. mqtt://host:port/topic-prefix
	RegistryURL string
}

var defaultConnectorConfig = ConnectorConfig{
	RegistryURL: "mqtt://localhost:1883/dht/",
}

func init() {
	if val := os.Getenv("DHT_TYPE"); val != "" {
		defaultConnectorConfig.Ref.Type = val
	}
	if val := os.Getenv("DHT_ID"); val != "" {
		defaultConnectorConfig.Ref.ID = val
	}
	if val := os.Getenv("DHT_REGISTRY_URL"); val != "" {
		defaultConnectorConfig.RegistryURL = val
	}
}

// SetupConnectorFlags sets up command line flags.
func SetupConnectorFlags() {
	flag.StringVar(&defaultConnectorConfig.Ref.Type, "sensor-type", defaultConnectorConfig.Ref.Type, "Sensor type to connect.")
	flag.StringVar(&defaultConnectorConfig.Ref.ID, "sensor-id", defaultConnectorConfig.Ref.ID, "Sensor ID to connect.")
	flag.StringVar(&defaultConnectorConfig.RegistryURL, "sensor-reg", defaultConnectorConfig.RegistryURL, "Sensor Registry URL.")
}

// DefaultConnector gets the default config.
func DefaultConnector() *ConnectorConfig {
	return &defaultConnectorConfig
}

// NewConnectorConfig creates a ConnectorConfig with default configurations.
func NewConnectorConfig() *ConnectorConfig {
	conf := defaultConnectorConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *ConnectorConfig) NewConnector() (telemetry.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %v", err)
	}
	switch parsedURL.Scheme {
	case "mqtt":
		return mqtt.NewConnector(c.RegistryURL)
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *ConnectorConfig) MustNewConnector() telemetry.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to a sensor.
func (c *ConnectorConfig) Connect() (telemetry.SensorConn, error) {
	if !c.Ref.IsValid() {
		return nil, fmt.Errorf("sensor type and id must be specified")
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Connect(context.TODO(), c.Ref)
}

// MustConnect connects to a sensor or fails.
func (c *ConnectorConfig) MustConnect() telemetry.SensorConn {
	conn, err := c.Connect()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}
