package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type SupportRepository struct {
	DB *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) Create(ticket *model.SupportTicket) error {
	return r.DB.Omit("User", "Teacher", "Quiz").Create(ticket).Error
}

func (r *SupportRepository) FindByID(id uint) (*model.SupportTicket, error) {
	var ticket model.SupportTicket
	err := r.DB.Preload("User").Preload("Teacher").Preload("Quiz").First(&ticket, id).Error
	return &ticket, err
}

func (r *SupportRepository) Update(ticket *model.SupportTicket) error {
	return r.DB.Omit("User", "Teacher", "Quiz").Save(ticket).Error
}

type TicketFilter struct {
	UserID    uint
	TeacherID uint
	Status    model.TicketStatus
	Type      model.TicketType
	Search    string
}

type TicketStats struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
	Unread     int64 `json:"unread"`
}

func (r *SupportRepository) filtered(f TicketFilter) *gorm.DB {
	q := r.DB.Model(&model.SupportTicket{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.TeacherID != 0 {
		q = q.Where("teacher_id = ?", f.TeacherID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("subject LIKE ? OR message LIKE ?", like, like)
	}
	return q
}

func (r *SupportRepository) List(f TicketFilter, page, limit int) ([]model.SupportTicket, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []model.SupportTicket
	offset := (page - 1) * limit
	err := r.filtered(f).
		Preload("User").Preload("Teacher").Preload("Quiz").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *SupportRepository) Stats(f TicketFilter) (*TicketStats, error) {
	stats := &TicketStats{}
	base := f
	base.Status = ""

	if err := r.filtered(base).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	byStatus := map[model.TicketStatus]*int64{
		model.TicketOpen:       &stats.Open,
		model.TicketInProgress: &stats.InProgress,
		model.TicketResolved:   &stats.Resolved,
		model.TicketClosed:     &stats.Closed,
	}
	for status, dst := range byStatus {
		fs := base
		fs.Status = status
		if err := r.filtered(fs).Count(dst).Error; err != nil {
			return nil, err
		}
	}
	if err := r.filtered(base).Where("is_read = ?", false).Count(&stats.Unread).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
