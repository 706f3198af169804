package keyevent

import (
	"fmt"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

// Key events travel over serial lines as NMEA 0183 style sentences:
//
//	$HKKEY,<row>,<col>,<D|U>*<checksum>
const (
	SentenceTalker = "HK"
	SentenceType   = "KEY"
)

// KeySentence is a parsed $HKKEY sentence.
type KeySentence struct {
	nmea.BaseSentence
	Row   int64
	Col   int64
	State string
}

func init() {
	nmea.MustRegisterParser(SentenceType, func(s nmea.BaseSentence) (nmea.Sentence, error) {
		p := nmea.NewParser(s)
		return KeySentence{
			BaseSentence: s,
			Row:          p.Int64(0, "row"),
			Col:          p.Int64(1, "col"),
			State:        p.EnumString(2, "state", "D", "U"),
		}, p.Err()
	})
}

// Sentence renders ev with its checksum, without a line terminator.
func (e Event) Sentence() string {
	state := "U"
	if e.Pressed {
		state = "D"
	}
	body := fmt.Sprintf("%s%s,%d,%d,%s", SentenceTalker, SentenceType, e.Row, e.Col, state)
	return "$" + body + "*" + nmea.Checksum(body)
}

// ParseSentence decodes one $HKKEY line.
func ParseSentence(line string) (Event, error) {
	s, err := nmea.Parse(strings.TrimSpace(line))
	if err != nil {
		return Event{}, err
	}
	ks, ok := s.(KeySentence)
	if !ok {
		return Event{}, fmt.Errorf("keyevent: not a key sentence: %s", s.Prefix())
	}
	if ks.Row < 0 || ks.Row > 255 || ks.Col < 0 || ks.Col > 255 {
		return Event{}, fmt.Errorf("keyevent: position %d,%d out of range", ks.Row, ks.Col)
	}
	return Event{Row: uint8(ks.Row), Col: uint8(ks.Col), Pressed: ks.State == "D"}, nil
}
