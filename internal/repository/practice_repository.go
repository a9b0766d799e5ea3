package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type PracticeRepository struct {
	DB *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) *PracticeRepository {
	return &PracticeRepository{DB: db}
}

func (r *PracticeRepository) Create(result *model.PracticeResult) error {
	return r.DB.Omit("Quiz").Create(result).Error
}

func (r *PracticeRepository) FindByID(id uint) (*model.PracticeResult, error) {
	var result model.PracticeResult
	err := r.DB.Preload("Quiz").Preload("Quiz.Subject").First(&result, id).Error
	return &result, err
}

func (r *PracticeRepository) ListByStudent(studentID uint) ([]model.PracticeResult, error) {
	var results []model.PracticeResult
	err := r.DB.Preload("Quiz").Preload("Quiz.Subject").
		Where("student_id = ?", studentID).
		Order("completed_at desc").
		Find(&results).Error
	return results, err
}

// LatestByStudentAndQuiz returns the most recent attempts first.
func (r *PracticeRepository) LatestByStudentAndQuiz(studentID, quizID uint, limit int) ([]model.PracticeResult, error) {
	var results []model.PracticeResult
	q := r.DB.Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Order("completed_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&results).Error
	return results, err
}

func (r *PracticeRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PracticeResult{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

func (r *PracticeRepository) CountByStudentAndQuiz(studentID, quizID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PracticeResult{}).
		Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Count(&count).Error
	return count, err
}

func (r *PracticeRepository) BestScore(studentID, quizID uint) (*float64, error) {
	var best *float64
	err := r.DB.Model(&model.PracticeResult{}).
		Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Select("MAX(score)").
		Scan(&best).Error
	return best, err
}

func (r *PracticeRepository) AverageScore(studentID uint) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.PracticeResult{}).
		Where("student_id = ?", studentID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
