package keyevent

import (
	"encoding/json"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	for i := 0; i < 5; i++ {
		if q.Push(Event{Row: uint8(i)}) {
			t.Fatalf("push %d evicted from a non-full queue", i)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}
	for i := 0; i < 5; i++ {
		ev, ok := q.Pop()
		if !ok || ev.Row != uint8(i) {
			t.Fatalf("pop %d = %+v, %v", i, ev, ok)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue reported an event")
	}
}

func TestQueueEvictsOldest(t *testing.T) {
	var q Queue
	evicted := 0
	for i := 0; i < Capacity+10; i++ {
		if q.Push(Event{Row: uint8(i), Pressed: true}) {
			evicted++
		}
	}
	if evicted != 10 {
		t.Fatalf("evicted %d, want 10", evicted)
	}
	if q.Len() != q.Cap() {
		t.Fatalf("Len() = %d, want %d", q.Len(), q.Cap())
	}
	for i := 10; i < Capacity+10; i++ {
		ev, _ := q.Pop()
		if ev.Row != uint8(i) {
			t.Fatalf("got row %d, want %d", ev.Row, i)
		}
	}
}

func TestQueueWrapsAround(t *testing.T) {
	var q Queue
	for round := 0; round < 3*Capacity; round++ {
		q.Push(Event{Col: uint8(round)})
		q.Push(Event{Col: uint8(round) + 1})
		a, _ := q.Pop()
		b, _ := q.Pop()
		if a.Col != uint8(round) || b.Col != uint8(round)+1 {
			t.Fatalf("round %d: got %d, %d", round, a.Col, b.Col)
		}
	}
}

func TestEventJSON(t *testing.T) {
	b, err := json.Marshal(Event{Row: 2, Col: 17, Pressed: true})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"row":2,"col":17,"pressed":true}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
	if got := (Event{Row: 1, Col: 3}).String(); got != "r1 c3 up" {
		t.Fatalf("String() = %q", got)
	}
}
