package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"timeclash/internal/models"
	"timeclash/internal/repository"
	"timeclash/internal/security"
	"timeclash/internal/service"
	"timeclash/internal/utils"
)

// ConverterHandler serves the live converter tab
type ConverterHandler struct {
	sessions  *repository.SessionRepository
	csrf      *security.CSRFGenerator
	templates *template.Template
}

// NewConverterHandler creates a new converter handler
func NewConverterHandler(sessions *repository.SessionRepository, csrf *security.CSRFGenerator, templates *template.Template) *ConverterHandler {
	return &ConverterHandler{
		sessions:  sessions,
		csrf:      csrf,
		templates: templates,
	}
}

// ShowConverter displays the three unit fields
func (h *ConverterHandler) ShowConverter(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
		return
	}

	token, err := h.csrf.GenerateToken(session)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error generating CSRF token", err)
		return
	}

	render(w, h.templates, "converter.tmpl", ConverterViewData{
		Title:     "Time Converter",
		ActiveTab: TabConverter,
		Fields:    newConverterFields(session.Converter),
		CSRFToken: token,
	})
}

// UpdateConverter applies an edit of one unit field
func (h *ConverterHandler) UpdateConverter(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
		return
	}

	value, err := service.Convert(r.FormValue("unit"), r.FormValue("value"))
	if err != nil {
		respondWithValidationError(w, err)
		return
	}

	session.Converter = value
	h.sessions.Save(session)

	if wantsJSON(r) {
		respondWithJSON(w, http.StatusOK, newConvertResponse(value))
		return
	}
	http.Redirect(w, r, "/converter", http.StatusSeeOther)
}

// ClearConverter blanks all three fields
func (h *ConverterHandler) ClearConverter(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
		return
	}

	session.Converter = models.TimeValue{}
	h.sessions.Save(session)

	http.Redirect(w, r, "/converter", http.StatusSeeOther)
}

// Convert answers keystroke-level conversions without touching the session
func (h *ConverterHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	value, err := service.Convert(q.Get("unit"), q.Get("value"))
	if err != nil {
		respondWithValidationError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newConvertResponse(value))
}

func respondWithValidationError(w http.ResponseWriter, err error) {
	var ve utils.ValidationError
	if errors.As(err, &ve) {
		respondWithError(w, http.StatusBadRequest, ve.Error(), "", nil)
		return
	}
	respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "", err)
}
