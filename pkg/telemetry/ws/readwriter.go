package ws

import "golang.org/x/net/websocket"

// ReadWriter adapts a websocket connection to PacketReadWriter.
// Websocket messages are already delimited, so telemetry packets map
// onto binary frames without a length prefix.
type ReadWriter struct {
	conn *websocket.Conn
}

// New wraps a websocket connection.
func New(conn *websocket.Conn) *ReadWriter {
	return &ReadWriter{conn: conn}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive(p.conn, &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send(p.conn, pkt)
}

// Close closes the underlying connection, unblocking a pipe stuck in
// ReadPacket.
func (p *ReadWriter) Close() error {
	return p.conn.Close()
}
