package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/dht.go/pkg/framework"
	pb "github.com/robotalks/dht.go/pkg/proto/dht/v1"
)

func TestTypedRoundTrip(t *testing.T) {
	ev := &ReadingEvent{ReadingEvent: pb.ReadingEvent{
		Humidity:    42,
		Temperature: 23,
		Checksum:    65,
		ChecksumOk:  true,
		Word:        0x2a174101,
	}}
	typed, err := TypedFrom(ev)
	require.NoError(t, err)
	require.Equal(t, ReadingEventTypeID, typed.TypeId)
	require.True(t, typed.IsEvent())
	require.False(t, typed.IsCommand())

	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	msg, err := decoded.Decode()
	require.NoError(t, err)
	got, ok := msg.(*ReadingEvent)
	require.True(t, ok)
	require.Equal(t, uint32(42), got.Humidity)
	require.Equal(t, uint32(23), got.Temperature)
	require.Equal(t, uint32(65), got.Checksum)
	require.True(t, got.ChecksumOk)
	require.Equal(t, uint32(0x2a174101), got.Word)
}

func TestTypedCommandKinds(t *testing.T) {
	typed, err := TypedFrom(&StatusQuery{})
	require.NoError(t, err)
	require.True(t, typed.IsCommand())

	typed, err = TypedFrom(&Status{})
	require.NoError(t, err)
	require.True(t, typed.IsCommand())
	require.NotZero(t, typed.TypeId&TypeIDMaskReply)
}

func TestTypedUnknownType(t *testing.T) {
	typed := &Typed{}
	typed.TypeId = GroupCustom | 0x0042
	_, err := typed.Decode()
	require.Error(t, err)
	unknown, ok := err.(*ErrUnknownType)
	require.True(t, ok)
	require.Equal(t, typed.TypeId, unknown.TypeID)
}

func TestTypedFromNotSerializable(t *testing.T) {
	_, err := TypedFrom(&localMsg{})
	require.Equal(t, ErrNotSerializable, err)
}

// localMsg is a loop-local message with no wire form.
type localMsg struct{}

func (m *localMsg) NewMessage() fx.Message { return &localMsg{} }
