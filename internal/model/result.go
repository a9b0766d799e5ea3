package model

import (
	"time"
)

// Result is one graded attempt of a quiz by a student. The unique index on
// (student_id, quiz_id) backs the single-attempt policy at the data store.
//
// swagger:model Result
type Result struct {
	BaseModel
	StudentID uint `gorm:"not null;uniqueIndex:idx_results_student_quiz" json:"studentId"`
	Student   User `json:"student"`
	QuizID    uint `gorm:"not null;uniqueIndex:idx_results_student_quiz" json:"quizId"`
	Quiz      Quiz `json:"quiz"`
	// Percentage over auto-gradable questions, rounded to two decimals.
	Score float64 `gorm:"not null" json:"score"`
	// Sum of manually assigned short-answer points. Kept separate from Score
	// and never merged into the percentage.
	ShortAnswerScore float64         `gorm:"default:0" json:"shortAnswerScore"`
	IsGraded         bool            `gorm:"default:false" json:"isGraded"`
	TeacherFeedback  string          `gorm:"type:text" json:"teacherFeedback,omitempty"`
	CompletedAt      time.Time       `json:"completedAt"`
	StudentAnswers   []StudentAnswer `gorm:"foreignKey:ResultID" json:"studentAnswers,omitempty"`
}

func (Result) TableName() string {
	return "results"
}

// StudentAnswer records one submitted response. Choice questions reference the
// selected option; short-answer questions store the free text instead, plus
// the points and comment a teacher assigns later.
//
// swagger:model StudentAnswer
type StudentAnswer struct {
	BaseModel
	ResultID         uint     `gorm:"index;not null" json:"resultId"`
	QuestionID       uint     `gorm:"index;not null" json:"questionId"`
	Question         Question `json:"question"`
	SelectedAnswerID *uint    `gorm:"index" json:"selectedAnswerId,omitempty"`
	SelectedAnswer   *Answer  `json:"selectedAnswer,omitempty"`
	CustomAnswer     string   `gorm:"type:text" json:"customAnswer,omitempty"`
	PointsEarned     float64  `gorm:"default:0" json:"pointsEarned"`
	TeacherComment   string   `gorm:"type:text" json:"teacherComment,omitempty"`
}

func (StudentAnswer) TableName() string {
	return "student_answers"
}
