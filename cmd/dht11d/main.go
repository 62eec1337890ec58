package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	fx "github.com/robotalks/dht.go/pkg/framework"
	"github.com/robotalks/dht.go/pkg/sampler"
	"github.com/robotalks/dht.go/pkg/telemetry"
	"github.com/robotalks/dht.go/pkg/telemetry/env"
)

func init() {
	env.SetSensorType("dht11", telemetry.SensorMeta{Description: "DHT11 Temperature/Humidity Sensor"})
	env.SetupSensorFlags()
	sampler.SetupFlags()
}

func main() {
	flag.Parse()

	e := env.NewSensorConfig().MustNewEnv()
	ctl, err := sampler.NewConfig().NewController(e)
	if err != nil {
		log.Fatalln(err)
	}
	loop := fx.NewLoop().Add(e, ctl)
	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("loop", loop))
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
