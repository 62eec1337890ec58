package stream

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte("dht11")))
	require.NoError(t, rw.WritePacket(nil))
	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte("dht11"), pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Empty(t, pkt)
}

func TestWriteTooLarge(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.Equal(t, ErrPacketTooLarge, rw.WritePacket(make([]byte, MaxPacketSize+1)))
	require.Zero(t, buf.Len())
}

func TestReadBogusLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(MaxPacketSize+1)))
	_, err := New(&buf).ReadPacket()
	require.Equal(t, ErrPacketTooLarge, err)
}
