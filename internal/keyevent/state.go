package keyevent

import (
	"sort"
	"sync"
)

// State is the set of keys currently held down, rebuilt from events by
// subscribers. It is safe for concurrent use.
type State struct {
	mu      sync.RWMutex
	down    map[uint16]Event
	last    Event
	haveAny bool
	count   uint64
}

func NewState() *State {
	return &State{down: make(map[uint16]Event)}
}

func key(row, col uint8) uint16 { return uint16(row)<<8 | uint16(col) }

// Apply records ev.
func (s *State) Apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Pressed {
		s.down[key(ev.Row, ev.Col)] = ev
	} else {
		delete(s.down, key(ev.Row, ev.Col))
	}
	s.last = ev
	s.haveAny = true
	s.count++
}

// Snapshot is a point-in-time copy of a State.
type Snapshot struct {
	Pressed []Event `json:"pressed"`
	Last    *Event  `json:"last,omitempty"`
	Events  uint64  `json:"events"`
}

// Snapshot returns the held keys sorted by row then column.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Pressed: make([]Event, 0, len(s.down)), Events: s.count}
	for _, ev := range s.down {
		snap.Pressed = append(snap.Pressed, ev)
	}
	sort.Slice(snap.Pressed, func(i, j int) bool {
		return key(snap.Pressed[i].Row, snap.Pressed[i].Col) < key(snap.Pressed[j].Row, snap.Pressed[j].Col)
	})
	if s.haveAny {
		last := s.last
		snap.Last = &last
	}
	return snap
}

// IsDown reports whether the key at (row, col) is held.
func (s *State) IsDown(row, col uint8) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.down[key(row, col)]
	return ok
}
