// Package keyevent holds key state transitions and the bounded queue that
// buffers them between matrix scans and readers.
package keyevent

import "fmt"

// Event is a press or release of the key at (Row, Col).
type Event struct {
	Row     uint8 `json:"row"`
	Col     uint8 `json:"col"`
	Pressed bool  `json:"pressed"`
}

func (e Event) String() string {
	state := "up"
	if e.Pressed {
		state = "down"
	}
	return fmt.Sprintf("r%d c%d %s", e.Row, e.Col, state)
}
