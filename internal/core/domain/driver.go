package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DriverProfile holds the data a driver fills in once before riding. The
// ServiceType is the tag matched against Campaign.ServiceTypes.
type DriverProfile struct {
	DriverID    string `json:"driver_id"`
	Name        string `json:"nome"`
	ServiceType string `json:"tipo_servico"`
}

// Complete reports whether the profile carries everything a ride needs.
func (p DriverProfile) Complete() bool {
	return strings.TrimSpace(p.ServiceType) != ""
}

// Validate checks the profile form rules: a 3..100 character name and a
// service type.
func (p DriverProfile) Validate() error {
	name := strings.TrimSpace(p.Name)
	if n := utf8.RuneCountInString(name); n < 3 || n > 100 {
		return fmt.Errorf("%w: name must have between 3 and 100 characters", ErrInvalidProfile)
	}
	if !p.Complete() {
		return fmt.Errorf("%w: service type is required", ErrInvalidProfile)
	}
	return nil
}

// MatchRequest describes the input of one matching cycle. Location is nil
// when the caller has no fix at all.
type MatchRequest struct {
	DriverID      string
	Location      *Location
	ServiceType   string
	IsStartOfRide bool
}
