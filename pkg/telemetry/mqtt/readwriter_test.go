package mqtt

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/dht.go/pkg/telemetry"
)

func TestReadWriterTopics(t *testing.T) {
	ref := telemetry.SensorRef{Type: "dht11", ID: "s0"}
	p := NewPacketReadWriter(nil).ForSensor(ref)
	require.Equal(t, "dht11/s0/cmd", p.SubTopic)
	require.Equal(t, "dht11/s0/msg", p.PubTopic)
	p = NewPacketReadWriter(nil).ForConnector(ref)
	require.Equal(t, "dht11/s0/msg", p.SubTopic)
	require.Equal(t, "dht11/s0/cmd", p.PubTopic)
}

func TestReadWriterShutdownUnblocksHandler(t *testing.T) {
	p := NewPacketReadWriter(nil)
	p.handleMsg("dht11/s0/cmd", []byte("buffered"))
	close(p.doneCh)

	// a delivery racing the shutdown must not block or panic.
	handled := make(chan struct{})
	go func() {
		p.handleMsg("dht11/s0/cmd", []byte("late"))
		close(handled)
	}()
	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("handler blocked after shutdown")
	}

	for {
		pkt, err := p.ReadPacket()
		if err != nil {
			require.Equal(t, io.EOF, err)
			return
		}
		require.NotEmpty(t, pkt)
	}
}
