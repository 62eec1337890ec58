package telemetry

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/dht.go/pkg/framework"
	pb "github.com/robotalks/dht.go/pkg/proto/dht/v1"
	"github.com/robotalks/dht.go/pkg/telemetry/msgs"
	"github.com/robotalks/dht.go/pkg/telemetry/stream"
)

func TestPipeCommandReply(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()
	clientConn, srvConn := net.Pipe()

	srv := NewPipe(stream.New(srvConn))
	srv.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		if !typed.IsCommand() {
			return nil
		}
		if _, ok := msg.(*msgs.StatusQuery); ok {
			return srv.SendCommandMsg(&msgs.Status{Status: pb.Status{Acquisitions: 7}}, typed.Sequence)
		}
		return srv.SendCommandMsg(msgs.NewCommandErr(msgs.ErrUnsupportedCommand), typed.Sequence)
	})
	go srv.Run(ctx)

	var conn PipeSensorConn
	conn.Init(stream.New(clientConn))
	go conn.pipe.Run(ctx)

	res := <-conn.DoCommand(&msgs.StatusQuery{}).ResultChan()
	require.NoError(t, res.Err)
	status, ok := res.Msg.(*msgs.Status)
	require.True(t, ok)
	require.Equal(t, uint64(7), status.Acquisitions)
}

func TestPipeCommandErr(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()
	clientConn, srvConn := net.Pipe()

	srv := NewPipe(stream.New(srvConn))
	srv.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		return srv.SendCommandMsg(msgs.NewCommandErrFromMsg("nope"), typed.Sequence)
	})
	go srv.Run(ctx)

	var conn PipeSensorConn
	conn.Init(stream.New(clientConn))
	go conn.pipe.Run(ctx)

	res := <-conn.DoCommand(&msgs.StatusQuery{}).ResultChan()
	require.Error(t, res.Err)
	require.Equal(t, "nope", res.Err.Error())
}

func TestPipeEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()
	clientConn, srvConn := net.Pipe()

	srv := NewPipe(stream.New(srvConn))

	eventCh := make(chan fx.Message, 1)
	client := NewPipe(stream.New(clientConn))
	client.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		if typed.IsEvent() {
			eventCh <- msg
		}
		return nil
	})
	go client.Run(ctx)

	ev := &msgs.ReadingEvent{ReadingEvent: pb.ReadingEvent{Humidity: 42, Temperature: 23, ChecksumOk: true}}
	require.NoError(t, srv.SendEventMsg(ev))

	select {
	case msg := <-eventCh:
		got, ok := msg.(*msgs.ReadingEvent)
		require.True(t, ok)
		require.Equal(t, uint32(42), got.Humidity)
		require.True(t, got.ChecksumOk)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestPipeUnknownCommandType(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()
	clientConn, srvConn := net.Pipe()

	// no handler: the pipe itself must refuse a command it can't decode.
	srv := NewPipe(stream.New(srvConn))
	go srv.Run(ctx)

	replyCh := make(chan *msgs.Typed, 1)
	client := NewPipe(stream.New(clientConn))
	client.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		replyCh <- typed
		return nil
	})
	go client.Run(ctx)

	require.NoError(t, client.SendTyped(&msgs.Typed{
		Typed: pb.Typed{TypeId: msgs.GroupCustom | 0x0042, Sequence: 9},
	}))

	select {
	case typed := <-replyCh:
		require.Equal(t, msgs.CommandErrTypeID, typed.TypeId)
		require.Equal(t, uint32(9), typed.Sequence)
		msg, err := typed.Decode()
		require.NoError(t, err)
		cmdErr, ok := msg.(*msgs.CommandErr)
		require.True(t, ok)
		require.Contains(t, cmdErr.Message, "unknown")
	case <-time.After(time.Second):
		t.Fatal("no reply received")
	}
}

func TestSensorConnExpiry(t *testing.T) {
	clientConn, srvConn := net.Pipe()
	defer srvConn.Close()

	// consume the outgoing command without replying.
	go func() {
		buf := make([]byte, 256)
		for {
			if _, err := srvConn.Read(buf); err != nil {
				return
			}
		}
	}()

	var conn PipeSensorConn
	conn.Init(stream.New(clientConn))
	conn.Expiration = time.Millisecond

	f := conn.DoCommand(&msgs.StatusQuery{})
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, conn.purgeExpired(nil))

	select {
	case res := <-f.ResultChan():
		require.Equal(t, context.DeadlineExceeded, res.Err)
	case <-time.After(time.Second):
		t.Fatal("future not resolved")
	}
}
