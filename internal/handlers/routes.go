package handlers

import (
	"net/http"
)

// NewRouter registers every page and endpoint and wraps the mux with request logging
func NewRouter(m *Middleware, converter *ConverterHandler, knowledge *KnowledgeHandler, quiz *QuizHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/converter", http.StatusSeeOther)
	})

	// Converter
	mux.HandleFunc("GET /converter", m.WithSession(converter.ShowConverter))
	mux.HandleFunc("POST /converter", m.WithSession(m.CSRFProtect(converter.UpdateConverter)))
	mux.HandleFunc("POST /converter/clear", m.WithSession(m.CSRFProtect(converter.ClearConverter)))
	mux.HandleFunc("GET /api/convert", converter.Convert)

	// Knowledge
	mux.HandleFunc("GET /knowledge", knowledge.ShowKnowledge)

	// Practice
	mux.HandleFunc("GET /practice", m.RateLimit(m.WithSession(quiz.ShowPractice)))
	mux.HandleFunc("POST /practice/answer", m.RateLimit(m.WithSession(m.CSRFProtect(quiz.SubmitAnswer))))
	mux.HandleFunc("POST /practice/next", m.RateLimit(m.WithSession(m.CSRFProtect(quiz.NextQuestion))))

	return Logging(mux)
}
