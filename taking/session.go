package taking

import (
	"errors"
	"strings"
)

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrUnanswered      = errors.New("current question is not answered")
	ErrNotLastQuestion = errors.New("not on the last question")
	ErrMissingStudent  = errors.New("student name and email are required")
	ErrSubmitted       = errors.New("session already submitted")
)

// Question is the taker's view of one quiz item plus the answer key used at
// submission.
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer string
}

// Session is the linear state machine a taker walks through: one question at
// a time, forward only after answering, submit only from the last question
// with everything filled in. Nothing is persisted until Submit succeeds; an
// abandoned session leaves no trace.
type Session struct {
	StudentName           string
	StudentEmail          string
	StudentRegisterNumber string

	questions []Question
	answers   []string
	current   int
	submitted bool
}

// NewSession starts a session over the given questions.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		questions: questions,
		answers:   make([]string, len(questions)),
	}, nil
}

// Current returns the index of the question being shown.
func (s *Session) Current() int { return s.current }

// Answers returns a copy of the accumulated answers.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Submitted reports whether the session reached its terminal state.
func (s *Session) Submitted() bool { return s.submitted }

// SelectAnswer records the answer for the current question without advancing.
func (s *Session) SelectAnswer(optionText string) error {
	if s.submitted {
		return ErrSubmitted
	}
	s.answers[s.current] = optionText
	return nil
}

// Next advances to the following question. It refuses to move past an
// unanswered question and clamps at the last one.
func (s *Session) Next() error {
	if s.submitted {
		return ErrSubmitted
	}
	if s.answers[s.current] == "" {
		return ErrUnanswered
	}
	if s.current < len(s.questions)-1 {
		s.current++
	}
	return nil
}

// Previous steps back one question, clamped at the first.
func (s *Session) Previous() {
	if s.submitted {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Submit finishes the session. It is allowed only from the last question,
// with every question answered and both student fields filled in. On success
// it returns the score and moves the session to its terminal state.
func (s *Session) Submit() (int, error) {
	if s.submitted {
		return 0, ErrSubmitted
	}
	if s.current != len(s.questions)-1 {
		return 0, ErrNotLastQuestion
	}
	for _, a := range s.answers {
		if a == "" {
			return 0, ErrUnanswered
		}
	}
	if strings.TrimSpace(s.StudentName) == "" || strings.TrimSpace(s.StudentEmail) == "" {
		return 0, ErrMissingStudent
	}
	s.submitted = true
	return Score(s.answers, s.questions), nil
}

// Score tallies exact, case-sensitive matches between answers and each
// question's correct answer. Positions beyond either slice score nothing.
func Score(answers []string, questions []Question) int {
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}
