package decode

// regMask keeps the shift register at 24 bits. The width is load-bearing:
// 26 bits are shifted in per acquisition (2 acknowledge + 24 data) and
// the fixed width silently discards the two acknowledge bits off the top.
// Do not widen it or skip the acknowledge bits explicitly without
// re-deriving the enable windows in decoder.go.
const regMask = 0xffffff

// shiftRegister is the 24-bit receive buffer. The earliest retained bit
// sits at bit 23, the latest at bit 0.
type shiftRegister struct {
	reg uint32
}

func (s *shiftRegister) value() uint32 {
	return s.reg
}

// shiftIn shifts the register left by one, dropping bit 23 and inserting
// bit at position 0.
func (s *shiftRegister) shiftIn(bit bool) {
	s.reg = (s.reg << 1) & regMask
	if bit {
		s.reg |= 1
	}
}

func (s *shiftRegister) reset() {
	s.reg = 0
}
