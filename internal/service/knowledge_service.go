package service

import (
	"timeclash/internal/models"
	"timeclash/internal/utils"
)

// KnowledgePanel builds the reference content. Every figure on it comes
// from the conversion functions so the panel cannot drift from the converter.
func KnowledgePanel() models.KnowledgePanel {
	hour := FromHours("1")
	minute := FromMinutes("1")

	return models.KnowledgePanel{
		Equivalences: []models.Equivalence{
			{Left: "1 hour", Right: utils.FormatNumber(hour.Minutes) + " minutes"},
			{Left: "1 minute", Right: utils.FormatNumber(minute.Seconds) + " seconds"},
			{Left: "1 hour", Right: utils.FormatNumber(hour.Seconds) + " seconds"},
		},
		Mnemonics: []models.Mnemonic{
			{Phrase: "Sixty and sixty, keep them in mind", Meaning: "1 hour is 60 minutes, 1 minute is 60 seconds"},
			{Phrase: "Thirty-six hundred makes an hour", Meaning: "1 hour equals 3600 seconds"},
		},
		Examples: []models.LifeExample{
			{Activity: "A class period", Value: FromMinutes("45"), Units: []models.Unit{models.UnitMinutes, models.UnitSeconds}},
			{Activity: "Watching a film", Value: FromHours("2"), Units: []models.Unit{models.UnitHours, models.UnitMinutes, models.UnitSeconds}},
			{Activity: "Lunch break", Value: FromMinutes("30"), Units: []models.Unit{models.UnitMinutes, models.UnitSeconds}},
		},
	}
}
