package handlers

import (
	"timeclash/internal/models"
)

// Tab names used by the navigation bar
const (
	TabConverter = "converter"
	TabKnowledge = "knowledge"
	TabPractice  = "practice"
)

type ConverterField struct {
	Unit  models.Unit
	Label string
	Value string
	Hint  string
}

type ConverterViewData struct {
	Title     string
	ActiveTab string
	Fields    []ConverterField
	CSRFToken string
}

type KnowledgeViewData struct {
	Title     string
	ActiveTab string
	Panel     models.KnowledgePanel
}

type PracticeViewData struct {
	Title             string
	ActiveTab         string
	Score             int
	QuestionsAnswered int
	Accuracy          int
	HasAccuracy       bool
	Question          *models.Question
	Feedback          *models.Feedback
	Locked            bool
	CSRFToken         string
}

// AnswerResponse is the JSON reply to an answer submission
type AnswerResponse struct {
	IsCorrect         bool    `json:"isCorrect"`
	CorrectAnswer     float64 `json:"correctAnswer"`
	Explanation       string  `json:"explanation"`
	Score             int     `json:"score"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	Accuracy          *int    `json:"accuracy,omitempty"`
}

// ConvertResponse is the JSON reply of the live conversion endpoint
type ConvertResponse struct {
	Edited  models.Unit `json:"edited"`
	Seconds string      `json:"seconds"`
	Minutes string      `json:"minutes"`
	Hours   string      `json:"hours"`
}

var converterHints = map[models.Unit]string{
	models.UnitHours:   "1 hour = 60 minutes = 3600 seconds",
	models.UnitMinutes: "1 minute = 60 seconds",
	models.UnitSeconds: "The smallest unit here",
}

func newConverterFields(v models.TimeValue) []ConverterField {
	fields := make([]ConverterField, 0, len(models.Units))
	for _, u := range models.Units {
		fields = append(fields, ConverterField{
			Unit:  u,
			Label: string(u),
			Value: v.Text(u),
			Hint:  converterHints[u],
		})
	}
	return fields
}

func newConvertResponse(v models.TimeValue) ConvertResponse {
	return ConvertResponse{
		Edited:  v.Edited,
		Seconds: v.Text(models.UnitSeconds),
		Minutes: v.Text(models.UnitMinutes),
		Hours:   v.Text(models.UnitHours),
	}
}
