package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/hall_matrix/internal/keyevent"
)

// EventSink receives every key event the scanner reads.
type EventSink interface {
	Publish(ev keyevent.Event) error
}

// mqttSink publishes events as JSON.
type mqttSink struct {
	client mqtt.Client
	topic  string
}

func (s mqttSink) Publish(ev keyevent.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	token := s.client.Publish(s.topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

// lineSink writes $HKKEY sentences, one per line.
type lineSink struct {
	w io.Writer
}

func (s lineSink) Publish(ev keyevent.Event) error {
	_, err := fmt.Fprintf(s.w, "%s\r\n", ev.Sentence())
	return err
}

// logSink logs every event.
type logSink struct {
	prefix string
}

func (s logSink) Publish(ev keyevent.Event) error {
	log.Printf("%s: %s", s.prefix, ev)
	return nil
}

// fanout publishes to every sink, logging failures and carrying on.
type fanout []EventSink

func (f fanout) Publish(ev keyevent.Event) error {
	var first error
	for _, s := range f {
		if err := s.Publish(ev); err != nil {
			log.Printf("scanner: publish %s via %T: %v", ev, s, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func connectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return client, nil
}

// decodeEvent unmarshals an MQTT payload.
func decodeEvent(payload []byte) (keyevent.Event, error) {
	var ev keyevent.Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return keyevent.Event{}, err
	}
	return ev, nil
}
