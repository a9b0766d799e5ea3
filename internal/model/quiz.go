package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title           string     `gorm:"size:255;not null" json:"title"`
	SubjectID       uint       `gorm:"index;not null" json:"subjectId"`
	Subject         Subject    `json:"subject"`
	CreatedByID     uint       `gorm:"index;not null" json:"createdById"`
	Questions       []Question `gorm:"many2many:quiz_questions" json:"questions,omitempty"`
	DurationMinutes int        `gorm:"not null" json:"durationMinutes"`
	StartTime       time.Time  `gorm:"not null" json:"startTime"`
	EndTime         time.Time  `gorm:"not null" json:"endTime"`

	// Public quizzes are visible to every student; private ones only to the
	// allow-list, which students join with the access code.
	IsPublic              bool   `gorm:"default:true" json:"isPublic"`
	AccessCode            string `gorm:"size:8;uniqueIndex" json:"accessCode"`
	AllowedStudents       []User `gorm:"many2many:quiz_allowed_students" json:"allowedStudents,omitempty"`
	AllowMultipleAttempts bool   `gorm:"default:false" json:"allowMultipleAttempts"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// BeforeCreate assigns an access code when none was set, mirroring how codes
// are handed out to teachers on quiz creation.
func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.AccessCode == "" {
		q.AccessCode = GenerateAccessCode()
	}
	return nil
}

// GenerateAccessCode returns a short uppercase token students type in to join
// a private quiz.
func GenerateAccessCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:6])
}

// IsOpenAt reports whether the quiz accepts attempts at the given instant.
func (q *Quiz) IsOpenAt(t time.Time) bool {
	return !t.Before(q.StartTime) && !t.After(q.EndTime)
}
