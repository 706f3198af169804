package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/keyevent"
)

// RunSerialProducer reads $HKKEY sentences from a keyboard controller on
// SERIAL_PORT and publishes each event as JSON to TOPIC_KEY_EVENTS.
func RunSerialProducer() error {
	cfg := config.Get()
	if cfg.SerialPort == "" {
		return fmt.Errorf("SERIAL_PORT is required")
	}

	// ---- 1) Connect to MQTT broker ----
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDSerial)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("serial producer connected to MQTT broker at %s", cfg.MQTTBroker)

	// ---- 2) Open the controller's serial port ----
	port, err := openSerial(cfg.SerialPort, cfg.SerialBaudRate)
	if err != nil {
		return err
	}
	defer port.Close()

	return forwardSentences(port, fanout{
		mqttSink{client: client, topic: cfg.TopicKeyEvents},
		logSink{prefix: "serial"},
	})
}

// forwardSentences publishes every valid key sentence read from r.
// Other lines are skipped; it returns when r fails.
func forwardSentences(r io.Reader, sink EventSink) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Printf("serial: read error: %v", err)
			return err
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "$") {
			continue
		}

		ev, err := keyevent.ParseSentence(line)
		if err != nil {
			// line noise or a partial sentence
			continue
		}
		_ = sink.Publish(ev) // failures are logged by the sinks
	}
}
