package draft

import (
	"strconv"
	"strings"
)

const (
	// MinOptions and MaxOptions bound the option count of every question.
	MinOptions = 2
	MaxOptions = 5
)

// Direction selects the neighbor a question is swapped with.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// Question is one editable multiple choice item inside a draft.
type Question struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	OrderIndex    int      `json:"order_index"`
}

// Draft is the in-memory editable state of a quiz before persistence. It is
// an explicit value: every mutation goes through a method, nothing is shared.
type Draft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// ValidationError reports the first structural rule a draft violates.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// New returns a draft holding a single blank question, the minimal state the
// authoring form starts from. A quiz always has at least one question.
func New() Draft {
	d := Draft{}
	d.AddQuestion()
	return d
}

// AddQuestion appends a blank question with two empty options.
func (d *Draft) AddQuestion() {
	d.Questions = append(d.Questions, Question{
		Options:    make([]string, MinOptions),
		OrderIndex: len(d.Questions),
	})
}

// RemoveQuestion removes the question at index and re-sequences order
// indexes. No-op when only one question remains or index is out of range.
func (d *Draft) RemoveQuestion(index int) {
	if len(d.Questions) <= 1 || index < 0 || index >= len(d.Questions) {
		return
	}
	d.Questions = append(d.Questions[:index], d.Questions[index+1:]...)
	d.resequence()
}

// MoveQuestion swaps the question at index with its neighbor in the given
// direction. No-op at either boundary.
func (d *Draft) MoveQuestion(index int, dir Direction) {
	target := index + int(dir)
	if index < 0 || index >= len(d.Questions) || target < 0 || target >= len(d.Questions) {
		return
	}
	d.Questions[index], d.Questions[target] = d.Questions[target], d.Questions[index]
	d.resequence()
}

// AddOption appends an empty option. No-op at the five option cap.
func (d *Draft) AddOption(questionIndex int) {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return
	}
	q := &d.Questions[questionIndex]
	if len(q.Options) >= MaxOptions {
		return
	}
	q.Options = append(q.Options, "")
}

// RemoveOption removes one option. No-op at the two option floor. When the
// removed option was the correct answer, the correct answer is cleared so it
// never points at a value that is no longer an option.
func (d *Draft) RemoveOption(questionIndex, optionIndex int) {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return
	}
	q := &d.Questions[questionIndex]
	if len(q.Options) <= MinOptions || optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}
	removed := q.Options[optionIndex]
	q.Options = append(q.Options[:optionIndex], q.Options[optionIndex+1:]...)
	if q.CorrectAnswer != "" && q.CorrectAnswer == removed {
		q.CorrectAnswer = ""
	}
}

// UpdateOption replaces an option's text. A correct answer that equaled the
// old text migrates to the new text, so editing a chosen option keeps it
// chosen.
func (d *Draft) UpdateOption(questionIndex, optionIndex int, newText string) {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return
	}
	q := &d.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}
	old := q.Options[optionIndex]
	q.Options[optionIndex] = newText
	if q.CorrectAnswer != "" && q.CorrectAnswer == old {
		q.CorrectAnswer = newText
	}
}

// SetCorrectAnswer marks one existing option as the correct answer.
func (d *Draft) SetCorrectAnswer(questionIndex int, text string) {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return
	}
	q := &d.Questions[questionIndex]
	for _, opt := range q.Options {
		if opt == text {
			q.CorrectAnswer = text
			return
		}
	}
}

// Validate checks the draft against the structural rules enforced before any
// write, reporting only the first violation: title present, every question
// text present, every option present, a correct answer chosen for every
// question, and every correct answer among its question's options.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required!"}
	}
	for i := range d.Questions {
		if strings.TrimSpace(d.Questions[i].QuestionText) == "" {
			return &ValidationError{Field: questionField(i), Message: "Question text is required!"}
		}
	}
	for i := range d.Questions {
		for _, opt := range d.Questions[i].Options {
			if strings.TrimSpace(opt) == "" {
				return &ValidationError{Field: questionField(i), Message: "All options must be filled in!"}
			}
		}
	}
	for i := range d.Questions {
		if d.Questions[i].CorrectAnswer == "" {
			return &ValidationError{Field: questionField(i), Message: "A correct answer must be selected!"}
		}
	}
	for i := range d.Questions {
		if !contains(d.Questions[i].Options, d.Questions[i].CorrectAnswer) {
			return &ValidationError{Field: questionField(i), Message: "Correct answer must be one of the options!"}
		}
	}
	return nil
}

func (d *Draft) resequence() {
	for i := range d.Questions {
		d.Questions[i].OrderIndex = i
	}
}

func questionField(i int) string {
	return "questions[" + strconv.Itoa(i) + "]"
}

func contains(opts []string, v string) bool {
	for _, opt := range opts {
		if opt == v {
			return true
		}
	}
	return false
}
