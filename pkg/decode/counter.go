package decode

// MaxBits is the saturation value of the bit counter: 42 falling edges
// arrive during one acquisition (2 acknowledge edges plus 40 data bits),
// and the counter must hold at 42 through the trailing edge-free interval
// without wrapping.
const MaxBits = 42

// bitCounter counts received bits, saturating at MaxBits.
type bitCounter struct {
	c int
}

func (b *bitCounter) value() int {
	return b.c
}

// tick applies this tick's control signals. Reset wins over advance.
func (b *bitCounter) tick(reset, advance bool) {
	switch {
	case reset:
		b.c = 0
	case advance && b.c < MaxBits:
		b.c++
	}
}
