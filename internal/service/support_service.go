package service

import (
	"errors"
	"fmt"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type SupportService struct {
	supportRepo *repository.SupportRepository
	userRepo    *repository.UserRepository
}

func NewSupportService(supportRepo *repository.SupportRepository, userRepo *repository.UserRepository) *SupportService {
	return &SupportService{supportRepo: supportRepo, userRepo: userRepo}
}

type TicketInput struct {
	Type      model.TicketType `json:"type" binding:"omitempty,oneof=TECHNICAL QUESTION ACCOUNT FEEDBACK OTHER"`
	Subject   string           `json:"subject" binding:"required,max=200"`
	Message   string           `json:"message" binding:"required"`
	TeacherID *uint            `json:"teacherId"`
	QuizID    *uint            `json:"quizId"`
}

func (s *SupportService) Create(userID uint, input TicketInput) (*model.SupportTicket, error) {
	if input.TeacherID != nil {
		teacher, err := s.userRepo.FindByID(*input.TeacherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrUserNotFound
			}
			return nil, err
		}
		if teacher.Role != model.Teacher {
			return nil, fmt.Errorf("ticket recipient is not a teacher")
		}
	}

	ticketType := input.Type
	if ticketType == "" {
		ticketType = model.TicketQuestion
	}
	ticket := &model.SupportTicket{
		UserID:    userID,
		TeacherID: input.TeacherID,
		QuizID:    input.QuizID,
		Type:      ticketType,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    model.TicketOpen,
	}
	if err := s.supportRepo.Create(ticket); err != nil {
		return nil, err
	}
	return s.supportRepo.FindByID(ticket.ID)
}

// Get returns a ticket visible to the caller: the author, the addressed
// teacher, or an admin.
func (s *SupportService) Get(ticketID uint, claims *util.Claims) (*model.SupportTicket, error) {
	ticket, err := s.supportRepo.FindByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	if !s.canSee(ticket, claims) {
		return nil, util.ErrPermissionDenied
	}
	return ticket, nil
}

func (s *SupportService) canSee(ticket *model.SupportTicket, claims *util.Claims) bool {
	switch {
	case claims.Role == model.Admin:
		return true
	case ticket.UserID == claims.UserID:
		return true
	case ticket.TeacherID != nil && *ticket.TeacherID == claims.UserID:
		return true
	}
	return false
}

// ListMine lists tickets the student opened.
func (s *SupportService) ListMine(userID uint, status model.TicketStatus, page, limit int) ([]model.SupportTicket, int64, error) {
	return s.supportRepo.List(repository.TicketFilter{UserID: userID, Status: status}, page, limit)
}

// Inbox lists tickets addressed to a teacher; admins see everything.
func (s *SupportService) Inbox(claims *util.Claims, f repository.TicketFilter, page, limit int) ([]model.SupportTicket, int64, error) {
	if claims.Role != model.Admin {
		f.TeacherID = claims.UserID
		f.UserID = 0
	}
	return s.supportRepo.List(f, page, limit)
}

func (s *SupportService) InboxStats(claims *util.Claims) (*repository.TicketStats, error) {
	f := repository.TicketFilter{}
	if claims.Role != model.Admin {
		f.TeacherID = claims.UserID
	}
	return s.supportRepo.Stats(f)
}

type ReplyInput struct {
	Response string             `json:"response" binding:"required"`
	Status   model.TicketStatus `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

// Reply records a teacher or admin response and moves the ticket forward.
func (s *SupportService) Reply(ticketID uint, claims *util.Claims, input ReplyInput) (*model.SupportTicket, error) {
	ticket, err := s.Get(ticketID, claims)
	if err != nil {
		return nil, err
	}
	if ticket.UserID == claims.UserID && claims.Role != model.Admin {
		return nil, util.ErrPermissionDenied
	}

	now := time.Now()
	replier := claims.UserID
	ticket.Response = input.Response
	ticket.RepliedByID = &replier
	ticket.RepliedAt = &now
	ticket.IsRead = true
	if input.Status != "" {
		ticket.Status = input.Status
	} else if ticket.Status == model.TicketOpen {
		ticket.Status = model.TicketInProgress
	}
	if err := s.supportRepo.Update(ticket); err != nil {
		return nil, err
	}
	return s.supportRepo.FindByID(ticket.ID)
}

func (s *SupportService) UpdateStatus(ticketID uint, claims *util.Claims, status model.TicketStatus) (*model.SupportTicket, error) {
	if !model.ValidTicketStatus(status) {
		return nil, fmt.Errorf("unknown ticket status %q", status)
	}
	ticket, err := s.Get(ticketID, claims)
	if err != nil {
		return nil, err
	}
	if ticket.UserID == claims.UserID && claims.Role != model.Admin && status != model.TicketClosed {
		// Authors may close their own tickets but not work them.
		return nil, util.ErrPermissionDenied
	}
	ticket.Status = status
	if err := s.supportRepo.Update(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// FollowUp appends another message from the ticket author. The ticket is
// flagged unread and reopened so it shows up in the inbox again.
func (s *SupportService) FollowUp(ticketID uint, claims *util.Claims, message string) (*model.SupportTicket, error) {
	ticket, err := s.Get(ticketID, claims)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != claims.UserID {
		return nil, util.ErrPermissionDenied
	}
	if ticket.Status == model.TicketClosed {
		return nil, fmt.Errorf("ticket is closed")
	}

	ticket.Message = ticket.Message + "\n\n---\n\n" + message
	ticket.IsRead = false
	if ticket.Status == model.TicketResolved {
		ticket.Status = model.TicketInProgress
	}
	if err := s.supportRepo.Update(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *SupportService) MarkRead(ticketID uint, claims *util.Claims) error {
	ticket, err := s.Get(ticketID, claims)
	if err != nil {
		return err
	}
	if ticket.IsRead {
		return nil
	}
	ticket.IsRead = true
	return s.supportRepo.Update(ticket)
}
