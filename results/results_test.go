package results

import (
	"strings"
	"testing"
	"time"

	"quizapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func response(score, total int, answers string) models.Response {
	return models.Response{
		StudentName:    "Jane",
		StudentEmail:   "jane@example.com",
		Answers:        datatypes.JSON(answers),
		Score:          score,
		TotalQuestions: total,
		SubmittedAt:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, 5)

	assert.Equal(t, 0, stats.TotalResponses)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0, stats.AveragePercentage)
}

func TestComputeStatsAverages(t *testing.T) {
	responses := []models.Response{
		response(3, 3, `["A","B","C"]`),
		response(1, 3, `["A","X","X"]`),
		response(2, 3, `["A","B","X"]`),
	}

	stats := ComputeStats(responses, 3)

	assert.Equal(t, 3, stats.TotalResponses)
	assert.Equal(t, 2.0, stats.AverageScore)
	assert.Equal(t, 67, stats.AveragePercentage) // round(2/3*100)
}

func TestComputeStatsRoundsScoreToOneDecimal(t *testing.T) {
	responses := []models.Response{
		response(1, 4, `[]`),
		response(2, 4, `[]`),
		response(2, 4, `[]`),
	}

	stats := ComputeStats(responses, 4)

	assert.Equal(t, 1.7, stats.AverageScore) // 5/3 = 1.666...
	assert.Equal(t, 43, stats.AveragePercentage)
}

func TestComputeStatsUsesCurrentQuestionCount(t *testing.T) {
	// Responses recorded against a 4-question quiz, quiz since trimmed to 2
	// questions: the average divides by the live count, while each row's own
	// percentage keeps dividing by its stored total.
	r := response(2, 4, `[]`)
	stats := ComputeStats([]models.Response{r}, 2)

	assert.Equal(t, 100, stats.AveragePercentage)
	assert.Equal(t, 50, ResponsePercentage(r))
}

func TestResponsePercentage(t *testing.T) {
	assert.Equal(t, 67, ResponsePercentage(response(2, 3, `[]`)))
	assert.Equal(t, 0, ResponsePercentage(response(0, 3, `[]`)))
	assert.Equal(t, 0, ResponsePercentage(response(1, 0, `[]`)))
}

func questions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{QuestionText: "Q", OrderIndex: i}
	}
	return qs
}

func TestExportCSVHeader(t *testing.T) {
	csv := ExportCSV(nil, questions(2))

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `"Student Name","Email","Score","Percentage","Submitted At","Question 1","Question 2"`, lines[0])
}

func TestExportCSVRow(t *testing.T) {
	r := response(1, 2, `["A","C"]`)
	csv := ExportCSV([]models.Response{r}, questions(2))

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Jane","jane@example.com","1","50%","2026-03-14 10:30:00","A","C"`, lines[1])
}

func TestExportCSVEscapesQuotes(t *testing.T) {
	r := response(1, 2, `["he said \"hi\"","C"]`)
	r.StudentName = `Jane "JJ" Doe`
	csv := ExportCSV([]models.Response{r}, questions(2))

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)

	// Quoted cells stay aligned: the row still has exactly 7 columns.
	assert.Equal(t, 6, strings.Count(lines[1], ","))
	assert.Contains(t, lines[1], `"Jane ""JJ"" Doe"`)
	assert.Contains(t, lines[1], `"he said ""hi"""`)
}

func TestExportCSVPadsMissingAnswers(t *testing.T) {
	r := response(1, 1, `["A"]`)
	csv := ExportCSV([]models.Response{r}, questions(3))

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	assert.True(t, strings.HasSuffix(lines[1], `"A","",""`))
}

func TestExportCSVPreservesInputOrder(t *testing.T) {
	first := response(2, 2, `[]`)
	first.StudentName = "Newest"
	second := response(1, 2, `[]`)
	second.StudentName = "Oldest"

	csv := ExportCSV([]models.Response{first, second}, questions(2))
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	assert.Contains(t, lines[1], "Newest")
	assert.Contains(t, lines[2], "Oldest")
}

func TestCSVFilename(t *testing.T) {
	assert.Equal(t, "my_quiz_2024__results.csv", CSVFilename("My Quiz 2024!"))
	assert.Equal(t, "math_results.csv", CSVFilename("math"))
	assert.Equal(t, "_results.csv", CSVFilename(""))
}
