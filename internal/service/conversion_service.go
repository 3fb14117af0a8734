package service

import (
	"timeclash/internal/models"
	"timeclash/internal/utils"
)

// FromSeconds rebuilds a TimeValue from text typed into the seconds field.
// Unreadable text converts as 0.
func FromSeconds(raw string) models.TimeValue {
	sec := utils.ParseNumberOrZero(raw)
	return models.TimeValue{
		Seconds: sec,
		Minutes: sec / models.SecondsPerMinute,
		Hours:   sec / models.SecondsPerHour,
		Edited:  models.UnitSeconds,
		Raw:     raw,
	}
}

// FromMinutes rebuilds a TimeValue from text typed into the minutes field
func FromMinutes(raw string) models.TimeValue {
	mins := utils.ParseNumberOrZero(raw)
	return models.TimeValue{
		Seconds: mins * models.SecondsPerMinute,
		Minutes: mins,
		Hours:   mins / models.MinutesPerHour,
		Edited:  models.UnitMinutes,
		Raw:     raw,
	}
}

// FromHours rebuilds a TimeValue from text typed into the hours field
func FromHours(raw string) models.TimeValue {
	hr := utils.ParseNumberOrZero(raw)
	return models.TimeValue{
		Seconds: hr * models.SecondsPerHour,
		Minutes: hr * models.MinutesPerHour,
		Hours:   hr,
		Edited:  models.UnitHours,
		Raw:     raw,
	}
}

// Convert dispatches an edit of the named unit field.
// Only an unknown unit name is an error; the text itself never is.
func Convert(unit, raw string) (models.TimeValue, error) {
	if err := utils.ValidateOneOf("unit", unit, string(models.UnitSeconds), string(models.UnitMinutes), string(models.UnitHours)); err != nil {
		return models.TimeValue{}, err
	}
	u, _ := models.ParseUnit(unit)
	switch u {
	case models.UnitSeconds:
		return FromSeconds(raw), nil
	case models.UnitMinutes:
		return FromMinutes(raw), nil
	default:
		return FromHours(raw), nil
	}
}
