package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Response is one student's completed attempt. Answers holds a JSON array of
// answer texts, stored positionally against the quiz's question order at
// submission time. Responses are append-only; no update or delete is exposed.
type Response struct {
	gorm.Model
	QuizID                uint           `json:"quiz_id" gorm:"index;not null"`
	StudentName           string         `json:"student_name"`
	StudentEmail          string         `json:"student_email"`
	StudentRegisterNumber string         `json:"student_register_number"`
	Answers               datatypes.JSON `json:"answers"`
	Score                 int            `json:"score"`
	TotalQuestions        int            `json:"total_questions"`
	SubmittedAt           time.Time      `json:"submitted_at" gorm:"index"`
	Quiz                  Quiz           `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
