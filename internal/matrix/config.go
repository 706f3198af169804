package matrix

import (
	"fmt"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/travel"
)

// Config tunes scanning. ActuationPt and DeactOffset are in travel units
// (0..travel.FullTravelUnit); they are multiplied by travel.TravelScale
// before being compared with scaled travel.
type Config struct {
	SettleAfterCol time.Duration
	ActuationPt    uint16
	DeactOffset    uint16
}

// DefaultConfig returns 40µs settle, actuation at 20 and a 3 unit release band.
func DefaultConfig() Config {
	return Config{
		SettleAfterCol: 40 * time.Microsecond,
		ActuationPt:    20,
		DeactOffset:    3,
	}
}

// Validate checks the ranges New relies on.
func (c Config) Validate() error {
	if c.SettleAfterCol < 0 {
		return fmt.Errorf("%w: negative settle time %v", ErrBadConfig, c.SettleAfterCol)
	}
	if c.ActuationPt > travel.FullTravelUnit {
		return fmt.Errorf("%w: actuation point %d above %d", ErrBadConfig, c.ActuationPt, travel.FullTravelUnit)
	}
	if c.DeactOffset > c.ActuationPt {
		return fmt.Errorf("%w: deactivation offset %d above actuation point %d", ErrBadConfig, c.DeactOffset, c.ActuationPt)
	}
	return nil
}

// thresholds returns the press and release levels in scaled travel.
func (c Config) thresholds() (act, deact uint16) {
	act = c.ActuationPt * travel.TravelScale
	if c.DeactOffset < c.ActuationPt {
		deact = (c.ActuationPt - c.DeactOffset) * travel.TravelScale
	}
	return act, deact
}
