package handlers

import (
	"html/template"
	"net/http"

	"timeclash/internal/models"
	"timeclash/internal/repository"
	"timeclash/internal/security"
	"timeclash/internal/service"
)

// QuizHandler serves the practice tab
type QuizHandler struct {
	quiz      *service.QuizService
	sessions  *repository.SessionRepository
	csrf      *security.CSRFGenerator
	templates *template.Template
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *service.QuizService, sessions *repository.SessionRepository, csrf *security.CSRFGenerator, templates *template.Template) *QuizHandler {
	return &QuizHandler{
		quiz:      quiz,
		sessions:  sessions,
		csrf:      csrf,
		templates: templates,
	}
}

// ShowPractice displays the current question, score and feedback.
// Opening the tab for the first time starts a question.
func (h *QuizHandler) ShowPractice(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
		return
	}

	if session.Quiz.State() == models.QuizStateNoQuestion {
		session.Quiz = h.quiz.StartNewQuestion(session.Quiz)
		session = h.sessions.Save(session)
	}

	token, err := h.csrf.GenerateToken(session)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error generating CSRF token", err)
		return
	}

	quiz := session.Quiz
	accuracy, hasAccuracy := quiz.AccuracyPercent()
	render(w, h.templates, "practice.tmpl", PracticeViewData{
		Title:             "Practice",
		ActiveTab:         TabPractice,
		Score:             quiz.Score,
		QuestionsAnswered: quiz.QuestionsAnswered,
		Accuracy:          accuracy,
		HasAccuracy:       hasAccuracy,
		Question:          quiz.CurrentQuestion,
		Feedback:          quiz.LastFeedback,
		Locked:            quiz.State() == models.QuizStateGraded,
		CSRFToken:         token,
	})
}

// SubmitAnswer grades the answer to the current question.
// Blank or unreadable answers and repeat submissions change nothing.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
		return
	}

	quiz, feedback := h.quiz.SubmitAnswer(session.Quiz, r.FormValue("answer"))
	if feedback != nil {
		session.Quiz = quiz
		h.sessions.Save(session)
	}

	if !wantsJSON(r) {
		http.Redirect(w, r, "/practice", http.StatusSeeOther)
		return
	}
	if feedback == nil {
		respondWithJSON(w, http.StatusConflict, map[string]string{"error": ErrNothingGraded})
		return
	}

	resp := AnswerResponse{
		IsCorrect:         feedback.IsCorrect,
		CorrectAnswer:     feedback.CorrectAnswer,
		Explanation:       feedback.Explanation,
		Score:             quiz.Score,
		QuestionsAnswered: quiz.QuestionsAnswered,
	}
	if pct, ok := quiz.AccuracyPercent(); ok {
		resp.Accuracy = &pct
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// NextQuestion replaces the current question with a fresh one
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
		return
	}

	session.Quiz = h.quiz.StartNewQuestion(session.Quiz)
	h.sessions.Save(session)

	http.Redirect(w, r, "/practice", http.StatusSeeOther)
}
