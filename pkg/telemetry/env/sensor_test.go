package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSensorID(t *testing.T) {
	// machine id or hostname, but never empty: a daemon started with
	// no -id must still register under a stable name.
	require.NotEmpty(t, defaultSensorID())
}

func TestNewEnvRequiresRef(t *testing.T) {
	conf := NewSensorConfig()
	conf.Info.Ref.Type = ""
	_, err := conf.NewEnv()
	require.Error(t, err)
}
