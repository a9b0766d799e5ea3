package model

import (
	"time"
)

// PracticeResult is the side-channel record for repeatable practice attempts.
// It never participates in the single-attempt enforcement of graded results.
//
// swagger:model PracticeResult
type PracticeResult struct {
	BaseModel
	StudentID      uint      `gorm:"index;not null" json:"studentId"`
	QuizID         uint      `gorm:"index;not null" json:"quizId"`
	Quiz           Quiz      `json:"quiz"`
	Score          float64   `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers int       `gorm:"not null" json:"correctAnswers"`
	// Percentage delta versus the previous attempt on the same quiz; 0 when
	// there is no previous attempt or its score was 0.
	Improvement float64   `gorm:"default:0" json:"improvement"`
	CompletedAt time.Time `json:"completedAt"`
}

func (PracticeResult) TableName() string {
	return "practice_results"
}
