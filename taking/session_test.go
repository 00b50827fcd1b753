package taking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestions() []Question {
	return []Question{
		{Text: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		{Text: "Q2", Options: []string{"B", "C"}, CorrectAnswer: "B"},
	}
}

func TestNewSessionRejectsEmptyQuiz(t *testing.T) {
	_, err := NewSession(nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestNextRequiresAnswer(t *testing.T) {
	s, err := NewSession(twoQuestions())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Next(), ErrUnanswered)
	assert.Equal(t, 0, s.Current())

	require.NoError(t, s.SelectAnswer("A"))
	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.Current())
}

func TestNextClampsAtLastQuestion(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	s.SelectAnswer("A")
	s.Next()
	s.SelectAnswer("B")

	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.Current())
}

func TestPreviousClampsAtFirstQuestion(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	s.Previous()
	assert.Equal(t, 0, s.Current())

	s.SelectAnswer("A")
	s.Next()
	s.Previous()
	assert.Equal(t, 0, s.Current())
}

func TestSelectAnswerDoesNotAdvance(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	require.NoError(t, s.SelectAnswer("A"))
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, []string{"A", ""}, s.Answers())
}

func TestSubmitOnlyFromLastQuestion(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	s.StudentName = "Jane"
	s.StudentEmail = "jane@example.com"
	s.SelectAnswer("A")

	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNotLastQuestion)
	assert.False(t, s.Submitted())
}

func TestSubmitRequiresAllAnswers(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	s.StudentName = "Jane"
	s.StudentEmail = "jane@example.com"
	s.SelectAnswer("A")
	s.Next()
	// on the last question but it has no answer yet

	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrUnanswered)
	assert.False(t, s.Submitted())
}

func TestSubmitRequiresStudentFields(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	s.SelectAnswer("A")
	s.Next()
	s.SelectAnswer("B")

	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrMissingStudent)

	s.StudentName = "Jane"
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrMissingStudent)

	s.StudentEmail = "jane@example.com"
	score, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, score)
	assert.True(t, s.Submitted())
}

func TestSubmitIsTerminal(t *testing.T) {
	s, _ := NewSession(twoQuestions())
	s.StudentName = "Jane"
	s.StudentEmail = "jane@example.com"
	s.SelectAnswer("A")
	s.Next()
	s.SelectAnswer("B")

	_, err := s.Submit()
	require.NoError(t, err)

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSubmitted)
	assert.ErrorIs(t, s.SelectAnswer("C"), ErrSubmitted)
	assert.ErrorIs(t, s.Next(), ErrSubmitted)
}

func TestScoreExactMatch(t *testing.T) {
	questions := []Question{
		{CorrectAnswer: "A"},
		{CorrectAnswer: "B"},
	}

	assert.Equal(t, 1, Score([]string{"A", "C"}, questions))
	assert.Equal(t, 2, Score([]string{"A", "B"}, questions))
	assert.Equal(t, 0, Score([]string{"a", "b"}, questions)) // case-sensitive
	assert.Equal(t, 0, Score([]string{"A "}, questions))     // no trimming
}

func TestScoreShortAnswerSlice(t *testing.T) {
	questions := []Question{{CorrectAnswer: "A"}, {CorrectAnswer: "B"}}
	assert.Equal(t, 1, Score([]string{"A"}, questions))
}
