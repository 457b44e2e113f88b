package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"zonosign/internal/models"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrTooFewSigns    = errors.New("category has too few signs for a quiz")
)

// EffectType identifies a scoring side effect produced by advancing a quiz
type EffectType string

const (
	EffectCorrectAnswer   EffectType = "correct_answer"
	EffectLessonCompleted EffectType = "lesson_completed"
)

// Effect is a single scoring side effect. Effects are returned from
// Advance and applied by the lesson orchestrator, in order, exactly once.
type Effect struct {
	Type     EffectType
	LessonID string
}

// AdvanceOutcome is the result of advancing past an answered question
type AdvanceOutcome struct {
	Effects   []Effect
	Completed bool
	Session   models.QuizSession
}

// SignSource provides the signs that make up a lesson. Satisfied by
// repository.SignRepository.
type SignSource interface {
	ListByCategory(categoryID string) ([]models.Sign, error)
}

// QuizService generates lesson quizzes from the sign catalog and tracks
// each user's active quiz session. The random source is injected so
// generation is reproducible in tests.
type QuizService struct {
	signs SignSource

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[int64]*models.QuizSession
}

// NewQuizService creates a new quiz service
func NewQuizService(signs SignSource, rng *rand.Rand) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizService{
		signs:    signs,
		rng:      rng,
		sessions: make(map[int64]*models.QuizSession),
	}
}

// GenerateQuestions builds one multiple-choice question per sign, in
// catalog order. Each question gets up to three distractors drawn without
// replacement from the other signs in the category; categories with fewer
// than four signs produce smaller option sets, and a category needs at
// least two signs to produce a quiz at all.
func (s *QuizService) GenerateQuestions(signs []models.Sign) ([]models.QuizQuestion, error) {
	if len(signs) < 2 {
		return nil, fmt.Errorf("%w: have %d, need at least 2", ErrTooFewSigns, len(signs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	optionCount := len(signs)
	if optionCount > 4 {
		optionCount = 4
	}

	questions := make([]models.QuizQuestion, 0, len(signs))
	for i, sign := range signs {
		others := make([]models.Sign, 0, len(signs)-1)
		for _, other := range signs {
			if other.ID != sign.ID {
				others = append(others, other)
			}
		}

		s.rng.Shuffle(len(others), func(a, b int) {
			others[a], others[b] = others[b], others[a]
		})

		options := make([]string, 0, optionCount)
		options = append(options, sign.Word)
		for _, distractor := range others[:optionCount-1] {
			options = append(options, distractor.Word)
		}

		s.rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		questions = append(questions, models.QuizQuestion{
			ID:            i + 1,
			SignID:        sign.ID,
			Prompt:        "What does this sign mean?",
			ImageURL:      sign.ImageURL,
			Options:       options,
			CorrectAnswer: sign.Word,
			Explanation:   fmt.Sprintf("%s: %s. %s", sign.Word, sign.Description, sign.Instructions),
		})
	}

	return questions, nil
}

// Start begins a quiz session for a lesson, replacing any existing session
func (s *QuizService) Start(userID int64, lessonID string) (models.QuizSession, error) {
	signs, err := s.signs.ListByCategory(lessonID)
	if err != nil {
		return models.QuizSession{}, fmt.Errorf("failed to load lesson signs: %w", err)
	}
	if len(signs) == 0 {
		return models.QuizSession{}, ErrLessonNotFound
	}

	questions, err := s.GenerateQuestions(signs)
	if err != nil {
		return models.QuizSession{}, err
	}

	session := &models.QuizSession{
		LessonID:  lessonID,
		Questions: questions,
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return *session, nil
}

// SelectAnswer records the user's answer for the current question and
// grades it. A no-op when there is no active question or feedback is
// already showing, so duplicate submits cannot re-grade.
func (s *QuizService) SelectAnswer(userID int64, answer string) (models.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok || session.Completed || session.ShowFeedback {
		return s.sessionCopy(session), false
	}
	question := session.CurrentQuestion()
	if question == nil {
		return s.sessionCopy(session), false
	}

	session.SelectedAnswer = answer
	session.IsCorrect = answer == question.CorrectAnswer
	session.ShowFeedback = true
	return s.sessionCopy(session), true
}

// Advance moves past an answered question, emitting the scoring effects
// the orchestrator must apply. Only valid while feedback is showing;
// anything else is a no-op. On the last question the session transitions
// to a terminal completed state, distinct from having no session at all.
func (s *QuizService) Advance(userID int64) (AdvanceOutcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok || session.Completed || !session.ShowFeedback {
		return AdvanceOutcome{}, false
	}

	var effects []Effect
	if session.IsCorrect {
		effects = append(effects, Effect{Type: EffectCorrectAnswer, LessonID: session.LessonID})
	}

	next := session.CurrentIndex + 1
	if next < len(session.Questions) {
		session.CurrentIndex = next
		session.SelectedAnswer = ""
		session.ShowFeedback = false
		session.IsCorrect = false
		return AdvanceOutcome{Effects: effects, Session: s.sessionCopy(session)}, true
	}

	session.Completed = true
	session.SelectedAnswer = ""
	session.ShowFeedback = false
	effects = append(effects, Effect{Type: EffectLessonCompleted, LessonID: session.LessonID})
	return AdvanceOutcome{Effects: effects, Completed: true, Session: s.sessionCopy(session)}, true
}

// Abandon discards the user's active session without scoring side
// effects. Per-question rewards already applied stay applied.
func (s *QuizService) Abandon(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Session returns a copy of the user's active session
func (s *QuizService) Session(userID int64) (models.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return models.QuizSession{}, false
	}
	return s.sessionCopy(session), true
}

// locked
func (s *QuizService) sessionCopy(session *models.QuizSession) models.QuizSession {
	if session == nil {
		return models.QuizSession{}
	}
	out := *session
	out.Questions = append([]models.QuizQuestion{}, session.Questions...)
	return out
}
