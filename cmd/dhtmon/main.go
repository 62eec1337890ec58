package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/robotalks/dht.go/pkg/telemetry/mqtt"
	"github.com/robotalks/dht.go/pkg/telemetry/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/dht/"
	raw     = false
)

func init() {
	if val := os.Getenv("DHT_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.BoolVar(&raw, "raw", raw, "Dump decoded protobufs instead of one-line summaries.")
}

// render turns a decoded telemetry message into one log line. Sensor
// messages print in their domain form; anything else falls back to
// the proto text.
func render(msg interface{}) string {
	if !raw {
		switch m := msg.(type) {
		case *msgs.ReadingEvent:
			return m.Summary()
		case *msgs.Status:
			return m.Summary()
		case *msgs.CommandErr:
			return "command error: " + m.Message
		case *msgs.CommandOK:
			return "command ok"
		case *msgs.StatusQuery:
			return "status query"
		}
	}
	if s, ok := msg.(msgs.SerializableMessage); ok {
		return fmt.Sprintf("[%T] %s", msg, s.Serializable().String())
	}
	return fmt.Sprintf("[%T]", msg)
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			if len(payload) == 0 {
				// retained tombstone: the sensor went away.
				log.Printf("%s: (gone)", topic)
				return
			}
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: %s", topic, render(msg))
	}))
	<-(chan struct{})(nil)
}
