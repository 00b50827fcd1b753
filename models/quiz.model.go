package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is a named, ordered set of questions owned by a teacher. PublicID is
// the opaque identifier embedded in the shareable link; possession of the
// link is the only access control for takers.
type Quiz struct {
	gorm.Model
	PublicID    string `json:"public_id" gorm:"uniqueIndex;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	CreatedBy   uint   `json:"created_by" gorm:"index;not null"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Question is one multiple choice item. Options holds a JSON array of 2-5
// option texts; CorrectAnswer equals exactly one of them. OrderIndex is kept
// contiguous 0..N-1 per quiz.
type Question struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"correct_answer"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	Quiz          Quiz           `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
