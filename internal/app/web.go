package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/keyevent"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WSMessage is pushed to websocket clients: a snapshot on connect, then
// one message per event.
type WSMessage struct {
	Type     string             `json:"type"` // snapshot, event
	Snapshot *keyevent.Snapshot `json:"snapshot,omitempty"`
	Event    *keyevent.Event    `json:"event,omitempty"`
}

// keyHub owns the key state and fans events out to websocket clients.
// Applying an event, broadcasting it and sending a joining client its
// snapshot all happen under mu, so every client sees each event exactly
// once: either inside its snapshot or as a later event message.
type keyHub struct {
	mu    sync.Mutex
	state *keyevent.State
	conns map[*websocket.Conn]struct{}
}

func newKeyHub(state *keyevent.State) *keyHub {
	return &keyHub{state: state, conns: make(map[*websocket.Conn]struct{})}
}

// join sends c the current snapshot and registers it for events.
func (h *keyHub) join(c *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	snap := h.state.Snapshot()
	if err := c.WriteJSON(WSMessage{Type: "snapshot", Snapshot: &snap}); err != nil {
		return err
	}
	h.conns[c] = struct{}{}
	return nil
}

func (h *keyHub) leave(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

// publish applies ev to the state and sends it to every client.
func (h *keyHub) publish(ev keyevent.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Apply(ev)
	msg := WSMessage{Type: "event", Event: &ev}
	for c := range h.conns {
		c.SetWriteDeadline(time.Now().Add(time.Second))
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("web: dropping websocket client %s: %v", c.RemoteAddr(), err)
			c.Close()
			delete(h.conns, c)
		}
	}
}

func (h *keyHub) clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// keyServer holds the key state rebuilt from MQTT.
type keyServer struct {
	state *keyevent.State
	hub   *keyHub
}

func newKeyServer() *keyServer {
	state := keyevent.NewState()
	return &keyServer{state: state, hub: newKeyHub(state)}
}

func (s *keyServer) apply(ev keyevent.Event) {
	s.hub.publish(ev)
}

func (s *keyServer) handler(static http.Handler) http.Handler {
	mux := http.NewServeMux()

	// JSON API endpoint: keys held right now
	mux.HandleFunc("/api/keys", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.state.Snapshot()); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// Live events
	mux.HandleFunc("/ws/keys", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("web: websocket upgrade error: %v", err)
			return
		}
		defer conn.Close()

		if err := s.hub.join(conn); err != nil {
			log.Printf("web: websocket write error: %v", err)
			return
		}
		defer s.hub.leave(conn)
		log.Printf("web: websocket client %s joined, %d connected", conn.RemoteAddr(), s.hub.clients())

		// Clients only listen; reading detects the close.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("web: websocket error: %v", err)
				}
				return
			}
		}
	})

	if static != nil {
		mux.Handle("/", static)
	}
	return mux
}

func RunWeb() error {
	cfg := config.Get()
	srv := newKeyServer()

	// 1) Connect to MQTT broker
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDWeb)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to key events and fan them out
	token := client.Subscribe(cfg.TopicKeyEvents, 0, func(_ mqtt.Client, msg mqtt.Message) {
		ev, err := decodeEvent(msg.Payload())
		if err != nil {
			log.Printf("web: MQTT payload unmarshal error: %v", err)
			return
		}
		srv.apply(ev)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: subscribed to MQTT topic %s", cfg.TopicKeyEvents)

	// 3) Static files from ./web as the root
	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, srv.handler(http.FileServer(http.Dir("web"))))
}
