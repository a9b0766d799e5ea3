package model

import (
	"time"
)

type TicketType string

const (
	TicketTechnical TicketType = "TECHNICAL"
	TicketQuestion  TicketType = "QUESTION"
	TicketAccount   TicketType = "ACCOUNT"
	TicketFeedback  TicketType = "FEEDBACK"
	TicketOther     TicketType = "OTHER"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// swagger:model SupportTicket
type SupportTicket struct {
	BaseModel
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"user"`

	// Teacher the ticket is addressed to; nil for tickets sent to the admins.
	TeacherID *uint `gorm:"index" json:"teacherId,omitempty"`
	Teacher   *User `json:"teacher,omitempty"`
	QuizID    *uint `gorm:"index" json:"quizId,omitempty"`
	Quiz      *Quiz `json:"quiz,omitempty"`

	Type        TicketType   `gorm:"type:enum('TECHNICAL','QUESTION','ACCOUNT','FEEDBACK','OTHER');default:'QUESTION'" json:"type"`
	Subject     string       `gorm:"size:200;not null" json:"subject"`
	Message     string       `gorm:"type:text;not null" json:"message"`
	Status      TicketStatus `gorm:"type:enum('OPEN','IN_PROGRESS','RESOLVED','CLOSED');default:'OPEN'" json:"status"`
	Response    string       `gorm:"type:text" json:"response,omitempty"`
	RepliedByID *uint        `gorm:"index" json:"repliedById,omitempty"`
	RepliedAt   *time.Time   `json:"repliedAt,omitempty"`
	IsRead      bool         `gorm:"default:false" json:"isRead"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
