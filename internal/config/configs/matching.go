package configs

import (
	"fmt"
	"time"
)

// Matching tunes campaign selection.
type Matching struct {
	// UnconditionalFallback lets a ride start with the first campaign of
	// the set when no targeting rule matched.
	UnconditionalFallback bool `env:"UNCONDITIONAL_FALLBACK" envDefault:"false"`
	// TimeZone is the IANA zone campaign windows are written in.
	TimeZone string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
}

// Location resolves TimeZone.
func (c Matching) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("matching time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
