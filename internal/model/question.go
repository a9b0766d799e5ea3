package model

type QuestionType string

const (
	SingleChoice   QuestionType = "SINGLE_CHOICE"
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TrueFalse      QuestionType = "TRUE_FALSE"
	ShortAnswer    QuestionType = "SHORT_ANSWER"
)

type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// Texts for the two fixed options of a TRUE_FALSE question.
const (
	TrueOptionText  = "True"
	FalseOptionText = "False"
)

// swagger:model Question
type Question struct {
	BaseModel
	SubjectID  uint         `gorm:"index;not null" json:"subjectId"`
	Subject    Subject      `json:"subject"`
	Text       string       `gorm:"type:text;not null" json:"text"`
	Type       QuestionType `gorm:"type:enum('SINGLE_CHOICE','MULTIPLE_CHOICE','TRUE_FALSE','SHORT_ANSWER');default:'SINGLE_CHOICE'" json:"type"`
	Difficulty Difficulty   `gorm:"type:enum('EASY','MEDIUM','HARD');not null" json:"difficulty"`

	// Reference answer for SHORT_ANSWER questions; empty for every other type.
	CorrectAnswerText string   `gorm:"type:text" json:"correctAnswerText,omitempty"`
	Explanation       string   `gorm:"type:text" json:"explanation,omitempty"`
	CreatedByID       uint     `gorm:"index;not null" json:"createdById"`
	Answers           []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// IsAutoGradable reports whether the question contributes to the automatic
// percentage score. SHORT_ANSWER is graded manually by a teacher.
func (q *Question) IsAutoGradable() bool {
	return q.Type != ShortAnswer
}

// HasOptions reports whether the question carries discrete answer options.
func (q *Question) HasOptions() bool {
	return q.Type == SingleChoice || q.Type == MultipleChoice || q.Type == TrueFalse
}

// swagger:model Answer
type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Text       string `gorm:"size:255;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Answer) TableName() string {
	return "answers"
}
