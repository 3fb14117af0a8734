package handlers

import (
	"html/template"
	"net/http"

	"timeclash/internal/service"
)

// KnowledgeHandler serves the static reference tab
type KnowledgeHandler struct {
	templates *template.Template
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(templates *template.Template) *KnowledgeHandler {
	return &KnowledgeHandler{templates: templates}
}

// ShowKnowledge displays conversion facts, mnemonics and everyday examples
func (h *KnowledgeHandler) ShowKnowledge(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "knowledge.tmpl", KnowledgeViewData{
		Title:     "Time Basics",
		ActiveTab: TabKnowledge,
		Panel:     service.KnowledgePanel(),
	})
}
