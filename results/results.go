package results

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"quizapp/models"
)

// Stats summarizes a quiz's response set.
type Stats struct {
	TotalResponses    int     `json:"total_responses"`
	AverageScore      float64 `json:"average_score"`
	AveragePercentage int     `json:"average_percentage"`
}

// ComputeStats aggregates a response set. The percentage divisor is the
// quiz's CURRENT question count, not each response's stored total; when a
// quiz is edited after responses exist the two can diverge, and the
// per-response percentage keeps using the stored total (see
// ResponsePercentage). An empty response set yields all zeros.
func ComputeStats(responses []models.Response, questionCount int) Stats {
	if len(responses) == 0 {
		return Stats{}
	}
	sum := 0
	for _, r := range responses {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(responses))
	avg = math.Round(avg*10) / 10

	pct := 0
	if questionCount > 0 {
		pct = int(math.Round(avg / float64(questionCount) * 100))
	}
	return Stats{
		TotalResponses:    len(responses),
		AverageScore:      avg,
		AveragePercentage: pct,
	}
}

// ResponsePercentage is the per-row percentage shown in the results table,
// computed against the response's own stored question total.
func ResponsePercentage(r models.Response) int {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(r.Score) / float64(r.TotalQuestions) * 100))
}

// ExportCSV renders a response set as CSV in the given order (callers pass
// responses sorted by submission time, newest first). Header:
// Student Name, Email, Score, Percentage, Submitted At, Question 1..N.
// Every cell is double-quote wrapped with internal quotes doubled, so quiz
// answers containing quotes cannot desynchronize rows.
func ExportCSV(responses []models.Response, questions []models.Question) string {
	var b strings.Builder

	header := []string{"Student Name", "Email", "Score", "Percentage", "Submitted At"}
	for i := range questions {
		header = append(header, fmt.Sprintf("Question %d", i+1))
	}
	writeRow(&b, header)

	for _, r := range responses {
		var answers []string
		if len(r.Answers) > 0 {
			if err := json.Unmarshal(r.Answers, &answers); err != nil {
				answers = nil
			}
		}
		row := []string{
			r.StudentName,
			r.StudentEmail,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d%%", ResponsePercentage(r)),
			r.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		for i := range questions {
			if i < len(answers) {
				row = append(row, answers[i])
			} else {
				row = append(row, "")
			}
		}
		writeRow(&b, row)
	}
	return b.String()
}

// CSVFilename derives the download name from the quiz title: every
// non-alphanumeric rune becomes an underscore, lowercased, suffixed
// "_results.csv".
func CSVFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + "_results.csv"
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
