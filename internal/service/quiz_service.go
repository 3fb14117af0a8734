package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"timeclash/internal/models"
	"timeclash/internal/utils"
)

const (
	// AnswerTolerance absorbs float rounding in the multiplier arithmetic
	AnswerTolerance = 0.01

	MinBaseValue = 1
	MaxBaseValue = 10
)

// RandomSource is the randomness the quiz draws from. *rand.Rand satisfies it,
// but only sources safe for concurrent use should back a shared QuizService.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// QuizService generates and grades practice questions
type QuizService struct {
	rng RandomSource
}

// NewQuizService creates a quiz service; a nil source uses the process-wide generator
func NewQuizService(rng RandomSource) *QuizService {
	if rng == nil {
		rng = globalSource{}
	}
	return &QuizService{rng: rng}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSeededSource returns a deterministic source for reproducible quizzes.
// It is safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// GenerateQuestion picks a conversion type and a base value from 1 to 10,
// each uniformly and independently
func (s *QuizService) GenerateQuestion() models.Question {
	t := models.ConversionTypes[s.rng.IntN(len(models.ConversionTypes))]
	base := s.rng.IntN(MaxBaseValue-MinBaseValue+1) + MinBaseValue
	return models.NewQuestion(t, base)
}

// StartNewQuestion replaces the current question and clears stale feedback.
// Callers should also clear any pending answer input.
func (s *QuizService) StartNewQuestion(session models.QuizSession) models.QuizSession {
	q := s.GenerateQuestion()
	session.CurrentQuestion = &q
	session.LastFeedback = nil
	return session
}

// SubmitAnswer grades raw against the current question.
// It is a no-op returning nil feedback when there is no active question,
// when the question was already graded, or when raw holds no number.
func (s *QuizService) SubmitAnswer(session models.QuizSession, raw string) (models.QuizSession, *models.Feedback) {
	if session.State() != models.QuizStateActive {
		return session, nil
	}
	answer, ok := utils.ParseNumber(raw)
	if !ok {
		return session, nil
	}

	fb := GradeAnswer(*session.CurrentQuestion, answer)
	session.LastFeedback = &fb
	session.QuestionsAnswered++
	if fb.IsCorrect {
		session.Score++
	}
	return session, &fb
}

// GradeAnswer compares answer with the question's correct answer within AnswerTolerance
func GradeAnswer(q models.Question, answer float64) models.Feedback {
	isCorrect := math.Abs(answer-q.CorrectAnswer) < AnswerTolerance

	verdict := "Not quite"
	if isCorrect {
		verdict = "Correct!"
	}
	return models.Feedback{
		IsCorrect:     isCorrect,
		CorrectAnswer: q.CorrectAnswer,
		Explanation: fmt.Sprintf("%s (%s): %s %d %s = %s %s",
			q.Type.Label, q.Type.Rule(), verdict,
			q.BaseValue, q.Type.From.Name(q.BaseValue),
			utils.FormatNumber(q.CorrectAnswer), q.Type.To),
	}
}
