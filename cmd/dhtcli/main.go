package main

import (
	"github.com/robotalks/dht.go/pkg/cli/sh"
	"github.com/robotalks/dht.go/pkg/telemetry/env"

	_ "github.com/robotalks/dht.go/pkg/cli/cmds/sensor"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupConnectorFlags()
}

func main() {
	sh.Main()
}
