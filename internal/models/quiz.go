package models

import (
	"fmt"
	"math"

	"timeclash/internal/utils"
)

// ConversionType is one of the fixed unit pairs a quiz question can ask about
type ConversionType struct {
	From       Unit
	To         Unit
	Multiplier float64
	Label      string
}

// Rule describes the arithmetic of the conversion, e.g. "× 60" or "÷ 3600"
func (c ConversionType) Rule() string {
	if c.Multiplier >= 1 {
		return "× " + utils.FormatNumber(c.Multiplier)
	}
	return "÷ " + utils.FormatNumber(math.Round(1/c.Multiplier))
}

// ConversionTypes is the closed set of question types
var ConversionTypes = []ConversionType{
	{From: UnitHours, To: UnitMinutes, Multiplier: MinutesPerHour, Label: "hours → minutes"},
	{From: UnitMinutes, To: UnitSeconds, Multiplier: SecondsPerMinute, Label: "minutes → seconds"},
	{From: UnitHours, To: UnitSeconds, Multiplier: SecondsPerHour, Label: "hours → seconds"},
	{From: UnitMinutes, To: UnitHours, Multiplier: 1.0 / MinutesPerHour, Label: "minutes → hours"},
	{From: UnitSeconds, To: UnitMinutes, Multiplier: 1.0 / SecondsPerMinute, Label: "seconds → minutes"},
	{From: UnitSeconds, To: UnitHours, Multiplier: 1.0 / SecondsPerHour, Label: "seconds → hours"},
}

// Question is a single generated quiz question. It is never modified after creation.
type Question struct {
	Type          ConversionType
	BaseValue     int
	CorrectAnswer float64
	Prompt        string
}

// NewQuestion builds a question for the given type and base value
func NewQuestion(t ConversionType, baseValue int) Question {
	return Question{
		Type:          t,
		BaseValue:     baseValue,
		CorrectAnswer: float64(baseValue) * t.Multiplier,
		Prompt:        fmt.Sprintf("How many %s are in %d %s?", t.To, baseValue, t.From.Name(baseValue)),
	}
}

// Feedback is the outcome of grading one answer
type Feedback struct {
	IsCorrect     bool
	CorrectAnswer float64
	Explanation   string
}

// QuizState is the per-question state of a quiz session
type QuizState string

const (
	QuizStateNoQuestion QuizState = "no_question"
	QuizStateActive     QuizState = "active"
	QuizStateGraded     QuizState = "graded"
)

// QuizSession is the running state of one practice interaction.
// Transitions return a new value; Score never exceeds QuestionsAnswered.
type QuizSession struct {
	Score             int
	QuestionsAnswered int
	CurrentQuestion   *Question
	LastFeedback      *Feedback
}

// State derives the question state from the session fields
func (s QuizSession) State() QuizState {
	switch {
	case s.CurrentQuestion == nil:
		return QuizStateNoQuestion
	case s.LastFeedback != nil:
		return QuizStateGraded
	default:
		return QuizStateActive
	}
}

// Accuracy returns the fraction of correct answers, or false if nothing has been answered yet
func (s QuizSession) Accuracy() (float64, bool) {
	if s.QuestionsAnswered == 0 {
		return 0, false
	}
	return float64(s.Score) / float64(s.QuestionsAnswered), true
}

// AccuracyPercent returns the accuracy rounded to a whole percentage
func (s QuizSession) AccuracyPercent() (int, bool) {
	acc, ok := s.Accuracy()
	if !ok {
		return 0, false
	}
	return int(math.Round(acc * 100)), true
}
