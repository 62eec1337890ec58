package stream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxPacketSize bounds a single framed packet. Telemetry protobufs are
// tiny (a reading event is well under 100 bytes), so anything larger
// means the stream lost framing or the peer is not speaking this
// protocol.
const MaxPacketSize = 64 * 1024

// ErrPacketTooLarge is returned when a packet exceeds MaxPacketSize.
var ErrPacketTooLarge = fmt.Errorf("packet exceeds %d bytes", MaxPacketSize)

// ReadWriter frames telemetry packets over a byte stream, each packet
// prefixed by a 4-byte little-endian length.
type ReadWriter struct {
	io.ReadWriter
}

// New creates a ReadWriter over a byte stream.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{s}
}

// ReadPacket implements PacketReader. A length prefix over
// MaxPacketSize fails the read instead of allocating for it.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPacketSize {
		return nil, ErrPacketTooLarge
	}
	pkt := make([]byte, size)
	_, err := io.ReadFull(p, pkt)
	return pkt, err
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	if len(pkt) > MaxPacketSize {
		return ErrPacketTooLarge
	}
	if err := binary.Write(p, binary.LittleEndian, uint32(len(pkt))); err != nil {
		return err
	}
	_, err := p.Write(pkt)
	return err
}
