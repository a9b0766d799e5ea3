package repository

import (
	"errors"
	"strings"

	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) List() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Order("name asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, id).Error
	return &subject, err
}

// GetOrCreate returns the subject with the given name, creating it on first
// sight. Used by the spreadsheet importer.
func (r *SubjectRepository) GetOrCreate(name string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	var subject model.Subject
	err := r.DB.Where("name = ?", name).First(&subject).Error
	if err == nil {
		return &subject, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	subject = model.Subject{Name: name}
	if err := r.DB.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}
