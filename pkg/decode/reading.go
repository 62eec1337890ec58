package decode

import "fmt"

// Reading is the decoded view of the receive buffer. It is recomputed
// continuously and is only authoritative on the tick the decoder reports
// DataReady; consumers needing a stable value must latch it there.
type Reading struct {
	Humidity    uint8 // relative humidity, percent
	Temperature uint8 // temperature, degrees Celsius
	Checksum    uint8 // checksum byte as transmitted by the sensor
}

// ReadingFrom extracts the Reading view from a 24-bit buffer value:
// humidity in bits 23:16, temperature in 15:8, checksum in 7:0.
func ReadingFrom(reg uint32) Reading {
	return Reading{
		Humidity:    uint8(reg >> 16),
		Temperature: uint8(reg >> 8),
		Checksum:    uint8(reg),
	}
}

// ChecksumOK reports whether the transmitted checksum matches
// (humidity + temperature) mod 256.
func (r Reading) ChecksumOK() bool {
	return r.Humidity+r.Temperature == r.Checksum
}

// String implements fmt.Stringer.
func (r Reading) String() string {
	status := "ok"
	if !r.ChecksumOK() {
		status = "checksum mismatch"
	}
	return fmt.Sprintf("%d%% %dC (%s)", r.Humidity, r.Temperature, status)
}
