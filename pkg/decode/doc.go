// Package decode implements the DHT11 single-wire protocol decoder.
package decode

// The DHT11 sensor shares one data line with the controller and sends no
// clock: every received bit is classified purely by the time between two
// consecutive falling edges of the line. The decoder drives the line low
// to request an acquisition, then measures inter-edge intervals to shift
// 40 bits into a 24-bit buffer, drops the two acknowledge bits by letting
// them fall off the top of the buffer, and checks the final byte against
// the sum of the first two.
//
// Everything here is synchronous and tick-driven: one deterministic step
// per sampling tick, no goroutines, no clock beyond the tick itself. The
// caller owns the time base (see pkg/sampler).
//
// Producer: sampled line level
// Consumer: acquisition service (pkg/sampler)
