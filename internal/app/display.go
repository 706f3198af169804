// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"image"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/keyevent"
)

const (
	displayW = 128
	displayH = 64
	// Two lines of 7x13 text sit above the key map.
	keyMapTop = 28
)

func RunDisplay() error {
	cfg := config.Get()

	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// Open I2C bus
	bus, err := i2creg.Open(cfg.ADCI2CBus)
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(&addrBus{Bus: bus, addr: cfg.DisplayI2CAddr}, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Printf("display: initialized at 0x%02X", cfg.DisplayI2CAddr)

	if err := showSplash(dev); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	state := keyevent.NewState()

	// Connect to MQTT
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDDisplay)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("display: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicKeyEvents, 0, func(_ mqtt.Client, msg mqtt.Message) {
		ev, err := decodeEvent(msg.Payload())
		if err != nil {
			log.Printf("display: key event unmarshal error: %v", err)
			return
		}
		state.Apply(ev)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: subscribed to %s", cfg.TopicKeyEvents)

	// Display update loop
	ticker := time.NewTicker(time.Duration(cfg.DisplayUpdateInterval) * time.Millisecond)
	defer ticker.Stop()

	log.Println("display: starting update loop")

	var shown uint64 = ^uint64(0)
	for range ticker.C {
		snap := state.Snapshot()
		if snap.Events == shown {
			continue
		}
		shown = snap.Events
		img := renderKeys(snap, cfg.MatrixRows, cfg.MatrixCols)
		if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
			log.Printf("display: error updating display: %v", err)
		}
	}

	return nil
}

// ssd1306Addr is the only address the driver talks to.
const ssd1306Addr = 0x3C

// addrBus redirects the driver's transactions to the configured address.
type addrBus struct {
	i2c.Bus
	addr uint16
}

func (b *addrBus) Tx(addr uint16, w, r []byte) error {
	if addr == ssd1306Addr {
		addr = b.addr
	}
	return b.Bus.Tx(addr, w, r)
}

func newCanvas() (*image1bit.VerticalLSB, *font.Drawer) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, displayW, displayH))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	return img, drawer
}

// keyCell returns the cell size and origin of the key map.
func keyCell(rows, cols int) (size, x0, y0 int) {
	size = min(displayW/cols, (displayH-keyMapTop)/rows)
	size = max(size, 1)
	x0 = (displayW - size*cols) / 2
	return size, x0, keyMapTop
}

// renderKeys draws the held-key count, the last event and a map with one
// filled cell per held key.
func renderKeys(snap keyevent.Snapshot, rows, cols int) *image1bit.VerticalLSB {
	img, drawer := newCanvas()

	drawer.Dot = fixed.P(0, 12)
	drawer.DrawBytes([]byte(fmt.Sprintf("Held: %d", len(snap.Pressed))))
	drawer.Dot = fixed.P(0, 25)
	if snap.Last == nil {
		drawer.DrawBytes([]byte("Waiting..."))
	} else {
		drawer.DrawBytes([]byte(snap.Last.String()))
	}

	size, x0, y0 := keyCell(rows, cols)
	// Outline every key position with its corner pixel.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			img.SetBit(x0+c*size, y0+r*size, image1bit.On)
		}
	}
	for _, ev := range snap.Pressed {
		r, c := int(ev.Row), int(ev.Col)
		if r >= rows || c >= cols {
			continue
		}
		for dy := 0; dy < size-1; dy++ {
			for dx := 0; dx < size-1; dx++ {
				img.SetBit(x0+c*size+dx, y0+r*size+dy, image1bit.On)
			}
		}
	}
	return img
}

func showSplash(dev *ssd1306.Dev) error {
	img, drawer := newCanvas()

	drawer.Dot = fixed.P(0, 13)
	drawer.DrawBytes([]byte("Hall Matrix"))
	drawer.Dot = fixed.P(0, 32)
	drawer.DrawBytes([]byte("Calibrating"))
	drawer.Dot = fixed.P(0, 45)
	drawer.DrawBytes([]byte("hands off keys"))

	return dev.Draw(dev.Bounds(), img, image.Point{})
}
