package sensor

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/dht.go/pkg/cli/sh"
	fx "github.com/robotalks/dht.go/pkg/framework"
	"github.com/robotalks/dht.go/pkg/telemetry/msgs"
)

const watchTimeout = 30 * time.Second

var (
	// StatusCmd exposes StatusQuery command.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.StatusQuery{})
		}),
	}

	// WatchCmd prints streamed readings as they arrive.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "[COUNT]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			count := 5
			if len(c.Args) > 0 {
				val, err := strconv.Atoi(c.Args[0])
				if err != nil || val <= 0 {
					c.Err(fmt.Errorf("Invalid COUNT: %q", c.Args[0]))
					return
				}
				count = val
			}
			s := sh.ShellFrom(c)
			ch := make(chan *msgs.ReadingEvent, 16)
			s.Loop.SetEventFunc(func(msg fx.Message) {
				if ev, ok := msg.(*msgs.ReadingEvent); ok {
					select {
					case ch <- ev:
					default:
					}
				}
			})
			defer s.Loop.SetEventFunc(nil)
			for n := 0; n < count; n++ {
				select {
				case ev := <-ch:
					c.Println(ev.Summary())
				case <-time.After(watchTimeout):
					c.Err(fmt.Errorf("no reading within %v", watchTimeout))
					return
				}
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&StatusCmd,
		&WatchCmd,
	)
}
