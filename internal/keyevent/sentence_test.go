package keyevent

import "testing"

func TestSentence(t *testing.T) {
	got := Event{Row: 2, Col: 17, Pressed: true}.Sentence()
	if got != "$HKKEY,2,17,D*08" {
		t.Fatalf("Sentence() = %q, want $HKKEY,2,17,D*08", got)
	}
	ev, err := ParseSentence(got + "\r\n")
	if err != nil {
		t.Fatalf("ParseSentence(%q): %v", got, err)
	}
	if ev != (Event{Row: 2, Col: 17, Pressed: true}) {
		t.Fatalf("parsed %v", ev)
	}
}

func TestParseSentenceRejects(t *testing.T) {
	good := Event{Row: 0, Col: 3}.Sentence()
	bad := []string{
		"",
		"HKKEY,0,3,U",
		good[:len(good)-2] + "00",    // wrong checksum
		"$HKKEY,0,3,X*" + "00",       // bad state, bad checksum
		Event{Row: 1}.Sentence()[:8], // truncated
	}
	for _, line := range bad {
		if _, err := ParseSentence(line); err == nil {
			t.Errorf("ParseSentence(%q) succeeded", line)
		}
	}
}

func TestState(t *testing.T) {
	s := NewState()
	if snap := s.Snapshot(); len(snap.Pressed) != 0 || snap.Last != nil {
		t.Fatalf("empty snapshot = %+v", snap)
	}
	s.Apply(Event{Row: 3, Col: 1, Pressed: true})
	s.Apply(Event{Row: 0, Col: 9, Pressed: true})
	s.Apply(Event{Row: 3, Col: 0, Pressed: true})
	s.Apply(Event{Row: 3, Col: 1, Pressed: false})

	snap := s.Snapshot()
	want := []Event{{Row: 0, Col: 9, Pressed: true}, {Row: 3, Col: 0, Pressed: true}}
	if len(snap.Pressed) != 2 || snap.Pressed[0] != want[0] || snap.Pressed[1] != want[1] {
		t.Fatalf("pressed = %v, want %v", snap.Pressed, want)
	}
	if snap.Last == nil || *snap.Last != (Event{Row: 3, Col: 1}) || snap.Events != 4 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if !s.IsDown(0, 9) || s.IsDown(3, 1) {
		t.Fatal("IsDown disagrees with the applied events")
	}
}
