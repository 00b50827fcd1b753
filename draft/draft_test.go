package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Title: "Geography",
		Questions: []Question{
			{QuestionText: "Capital of France?", Options: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris", OrderIndex: 0},
			{QuestionText: "Capital of Spain?", Options: []string{"Madrid", "Seville"}, CorrectAnswer: "Madrid", OrderIndex: 1},
		},
	}
}

func TestNewStartsWithOneBlankQuestion(t *testing.T) {
	d := New()

	require.Len(t, d.Questions, 1)
	assert.Len(t, d.Questions[0].Options, 2)
	assert.Empty(t, d.Questions[0].CorrectAnswer)
	assert.Equal(t, 0, d.Questions[0].OrderIndex)
}

func TestAddQuestionAppendsWithNextOrderIndex(t *testing.T) {
	d := validDraft()
	d.AddQuestion()

	require.Len(t, d.Questions, 3)
	assert.Equal(t, 2, d.Questions[2].OrderIndex)
	assert.Len(t, d.Questions[2].Options, 2)
}

func TestRemoveQuestionKeepsAtLeastOne(t *testing.T) {
	d := New()
	d.RemoveQuestion(0)

	assert.Len(t, d.Questions, 1)
}

func TestRemoveQuestionResequences(t *testing.T) {
	d := validDraft()
	d.AddQuestion()
	d.RemoveQuestion(1)

	require.Len(t, d.Questions, 2)
	for i, q := range d.Questions {
		assert.Equal(t, i, q.OrderIndex)
	}
	assert.Equal(t, "Capital of France?", d.Questions[0].QuestionText)
}

func TestRemoveQuestionOutOfRangeIsNoOp(t *testing.T) {
	d := validDraft()
	d.RemoveQuestion(-1)
	d.RemoveQuestion(5)

	assert.Len(t, d.Questions, 2)
}

func TestMoveQuestionSwapsAndResequences(t *testing.T) {
	d := validDraft()
	d.MoveQuestion(0, Down)

	assert.Equal(t, "Capital of Spain?", d.Questions[0].QuestionText)
	assert.Equal(t, "Capital of France?", d.Questions[1].QuestionText)
	assert.Equal(t, 0, d.Questions[0].OrderIndex)
	assert.Equal(t, 1, d.Questions[1].OrderIndex)
}

func TestMoveQuestionBoundaryIsNoOp(t *testing.T) {
	d := validDraft()
	d.MoveQuestion(0, Up)
	d.MoveQuestion(1, Down)

	assert.Equal(t, "Capital of France?", d.Questions[0].QuestionText)
	assert.Equal(t, "Capital of Spain?", d.Questions[1].QuestionText)
}

func TestAddOptionCapsAtFive(t *testing.T) {
	d := validDraft()
	for i := 0; i < 10; i++ {
		d.AddOption(0)
	}

	assert.Len(t, d.Questions[0].Options, MaxOptions)
}

func TestRemoveOptionFloorsAtTwo(t *testing.T) {
	d := validDraft()
	d.RemoveOption(0, 0)

	assert.Len(t, d.Questions[0].Options, 2)
	assert.Equal(t, "Paris", d.Questions[0].CorrectAnswer)
}

func TestRemoveOptionClearsMatchingCorrectAnswer(t *testing.T) {
	d := validDraft()
	d.AddOption(0)
	d.UpdateOption(0, 2, "Nice")
	d.SetCorrectAnswer(0, "Nice")
	d.RemoveOption(0, 2)

	assert.Len(t, d.Questions[0].Options, 2)
	assert.Empty(t, d.Questions[0].CorrectAnswer)
}

func TestRemoveOptionKeepsUnrelatedCorrectAnswer(t *testing.T) {
	d := validDraft()
	d.AddOption(0)
	d.UpdateOption(0, 2, "Nice")
	d.RemoveOption(0, 2)

	assert.Equal(t, "Paris", d.Questions[0].CorrectAnswer)
}

func TestUpdateOptionMigratesCorrectAnswer(t *testing.T) {
	d := validDraft()
	d.UpdateOption(0, 0, "Paris, France")

	assert.Equal(t, "Paris, France", d.Questions[0].CorrectAnswer)
	assert.Equal(t, "Paris, France", d.Questions[0].Options[0])
}

func TestUpdateOptionLeavesOtherCorrectAnswerAlone(t *testing.T) {
	d := validDraft()
	d.UpdateOption(0, 1, "Marseille")

	assert.Equal(t, "Paris", d.Questions[0].CorrectAnswer)
}

func TestSetCorrectAnswerRejectsNonOption(t *testing.T) {
	d := validDraft()
	d.SetCorrectAnswer(0, "Berlin")

	assert.Equal(t, "Paris", d.Questions[0].CorrectAnswer)
}

func TestCorrectAnswerNeverStale(t *testing.T) {
	// Walk a draft through a series of edits; after each one the correct
	// answer must be one of the options or empty.
	d := validDraft()
	check := func() {
		for _, q := range d.Questions {
			if q.CorrectAnswer == "" {
				continue
			}
			assert.Contains(t, q.Options, q.CorrectAnswer)
		}
	}

	d.UpdateOption(0, 0, "Paris (FR)")
	check()
	d.AddOption(0)
	d.UpdateOption(0, 2, "Toulouse")
	check()
	d.SetCorrectAnswer(0, "Toulouse")
	d.RemoveOption(0, 2)
	check()
	d.MoveQuestion(0, Down)
	check()
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		field   string
		message string
	}{
		{
			name:    "empty title first",
			mutate:  func(d *Draft) { d.Title = "  "; d.Questions[0].QuestionText = "" },
			field:   "title",
			message: "Title is required!",
		},
		{
			name:    "empty question text",
			mutate:  func(d *Draft) { d.Questions[1].QuestionText = "" },
			field:   "questions[1]",
			message: "Question text is required!",
		},
		{
			name:    "empty option",
			mutate:  func(d *Draft) { d.Questions[0].Options[1] = " " },
			field:   "questions[0]",
			message: "All options must be filled in!",
		},
		{
			name:    "missing correct answer",
			mutate:  func(d *Draft) { d.Questions[1].CorrectAnswer = "" },
			field:   "questions[1]",
			message: "A correct answer must be selected!",
		},
		{
			name:    "correct answer not an option",
			mutate:  func(d *Draft) { d.Questions[0].CorrectAnswer = "Berlin" },
			field:   "questions[0]",
			message: "Correct answer must be one of the options!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := d.Validate()
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestValidateQuestionTextBeforeOptions(t *testing.T) {
	// An earlier question's blank option must not mask a later question's
	// blank text: all question texts are checked before any options.
	d := validDraft()
	d.Questions[0].Options[0] = ""
	d.Questions[1].QuestionText = ""

	err := d.Validate()
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Equal(t, "questions[1]", verr.Field)
	assert.Equal(t, "Question text is required!", verr.Message)
}

func TestValidatePasses(t *testing.T) {
	d := validDraft()
	assert.NoError(t, d.Validate())
}
