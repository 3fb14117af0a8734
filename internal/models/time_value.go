package models

import (
	"strings"

	"timeclash/internal/utils"
)

// Unit is one of the time units the converter and quiz work with
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
)

const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	SecondsPerHour   = SecondsPerMinute * MinutesPerHour
)

// Units lists the units in the order the converter shows them
var Units = []Unit{UnitHours, UnitMinutes, UnitSeconds}

// ParseUnit maps a form or flag value onto a Unit
func ParseUnit(s string) (Unit, bool) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitSeconds:
		return UnitSeconds, true
	case UnitMinutes:
		return UnitMinutes, true
	case UnitHours:
		return UnitHours, true
	}
	return "", false
}

// Name returns the unit name to use next to a count of n
func (u Unit) Name(n int) string {
	if n == 1 {
		return strings.TrimSuffix(string(u), "s")
	}
	return string(u)
}

// TimeValue is one duration expressed in all three units.
// It is rebuilt in full on every edit; Raw holds the text exactly as typed
// into the Edited field.
type TimeValue struct {
	Seconds float64
	Minutes float64
	Hours   float64
	Edited  Unit
	Raw     string
}

// Value returns the numeric value for a unit
func (v TimeValue) Value(u Unit) float64 {
	switch u {
	case UnitSeconds:
		return v.Seconds
	case UnitMinutes:
		return v.Minutes
	case UnitHours:
		return v.Hours
	}
	return 0
}

// IsCleared reports whether the last edit left the field blank
func (v TimeValue) IsCleared() bool {
	return strings.TrimSpace(v.Raw) == ""
}

// Text returns the display string for a unit. The edited unit echoes the
// raw input; a cleared value displays as empty strings, not "0".
func (v TimeValue) Text(u Unit) string {
	if v.IsCleared() {
		return ""
	}
	if u == v.Edited {
		return v.Raw
	}
	return utils.FormatNumber(v.Value(u))
}
