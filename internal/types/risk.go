// Package types implements special types for the GrowVest backend.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// RiskLevel is the risk appetite for a goal or a profile. It determines
// the nominal annual return rate assumed for planning.
type RiskLevel string

const (
	RiskConservative RiskLevel = "conservative"
	RiskModerate     RiskLevel = "moderate"
	RiskAggressive   RiskLevel = "aggressive"
)

// RiskLevels returns all valid risk levels.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskConservative, RiskModerate, RiskAggressive}
}

var ErrInvalidRiskLevel = errors.New("the risk level must be one of: conservative, moderate, aggressive")

// ParseRiskLevel parses a string into a RiskLevel. Parsing is case-insensitive.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidRiskLevel, s)
	}

	return r, nil
}

// Valid reports whether the risk level is one of the defined values.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}

	return false
}

// AnnualRate returns the nominal annual return rate assumed for the
// risk level. The rate is a planning assumption, not a market forecast.
//
// Callers must only use this on valid risk levels, an unknown value
// has a rate of 0.
func (r RiskLevel) AnnualRate() float64 {
	switch r {
	case RiskConservative:
		return 0.06
	case RiskModerate:
		return 0.10
	case RiskAggressive:
		return 0.14
	}

	return 0
}

func (r RiskLevel) String() string {
	return string(r)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown risk levels are rejected at bind time.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*r = ""
		return nil
	}

	parsed, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for query
// and URI parameters. An empty parameter binds to the zero value.
func (r *RiskLevel) UnmarshalParam(param string) error {
	if param == "" {
		*r = ""
		return nil
	}

	parsed, err := ParseRiskLevel(param)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}
