package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/keyevent"
)

func RunConsoleMQTT() error {
	cfg := config.Get()

	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDConsole)
	if err != nil {
		return err
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	state := keyevent.NewState()
	token := client.Subscribe(cfg.TopicKeyEvents, 0, func(_ mqtt.Client, msg mqtt.Message) {
		ev, err := decodeEvent(msg.Payload())
		if err != nil {
			log.Printf("console: key event unmarshal error: %v", err)
			return
		}
		state.Apply(ev)
		fmt.Println(formatConsoleLine(ev, state.Snapshot()))
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicKeyEvents)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}

func formatConsoleLine(ev keyevent.Event, snap keyevent.Snapshot) string {
	state := "UP  "
	if ev.Pressed {
		state = "DOWN"
	}
	return fmt.Sprintf("[KEY ] row=%3d col=%3d %s  held=%d", ev.Row, ev.Col, state, len(snap.Pressed))
}
