package repository

import (
	"time"

	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz, questionIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions", "AllowedStudents", "Subject").Create(quiz).Error; err != nil {
			return err
		}
		return r.replaceQuestions(tx, quiz, questionIDs)
	})
}

func (r *QuizRepository) Update(quiz *model.Quiz, questionIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions", "AllowedStudents", "Subject").Save(quiz).Error; err != nil {
			return err
		}
		if questionIDs == nil {
			return nil
		}
		return r.replaceQuestions(tx, quiz, questionIDs)
	})
}

func (r *QuizRepository) replaceQuestions(tx *gorm.DB, quiz *model.Quiz, questionIDs []uint) error {
	var questions []model.Question
	if len(questionIDs) > 0 {
		if err := tx.Find(&questions, questionIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(quiz).Association("Questions").Replace(questions)
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM quiz_questions WHERE quiz_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM quiz_allowed_students WHERE quiz_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Subject").First(&quiz, id).Error
	return &quiz, err
}

// FindByIDWithQuestions loads the quiz with its full question set and options,
// which is what the take/submit path works from.
func (r *QuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Subject").
		Preload("Questions").
		Preload("Questions.Answers").
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByIDAndCreator(id, creatorID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Subject").Preload("Questions").
		Where("created_by_id = ?", creatorID).
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByAccessCode(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("access_code = ?", code).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) ListByCreator(creatorID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Subject").
		Where("created_by_id = ?", creatorID).
		Order("created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) CountByCreator(creatorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).Where("created_by_id = ?", creatorID).Count(&count).Error
	return count, err
}

func (r *QuizRepository) RecentByCreator(creatorID uint, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Subject").
		Where("created_by_id = ?", creatorID).
		Order("created_at desc").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) AddAllowedStudent(quizID uint, student *model.User) error {
	quiz := model.Quiz{BaseModel: model.BaseModel{ID: quizID}}
	return r.DB.Model(&quiz).Association("AllowedStudents").Append(student)
}

func (r *QuizRepository) IsStudentAllowed(quizID, studentID uint) (bool, error) {
	var count int64
	err := r.DB.Table("quiz_allowed_students").
		Where("quiz_id = ? AND user_id = ?", quizID, studentID).
		Count(&count).Error
	return count > 0, err
}

// ListOpenForStudent returns quizzes a student can currently take: public open
// quizzes plus private open quizzes the student has joined.
func (r *QuizRepository) ListOpenForStudent(studentID uint, now time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Subject").
		Where("start_time <= ? AND end_time >= ?", now, now).
		Where("is_public = ? OR id IN (SELECT quiz_id FROM quiz_allowed_students WHERE user_id = ?)", true, studentID).
		Order("end_time asc").
		Distinct().
		Find(&quizzes).Error
	return quizzes, err
}

// ListPublicOpen powers the explore page; search filters on the title.
func (r *QuizRepository) ListPublicOpen(now time.Time, search string) ([]model.Quiz, error) {
	q := r.DB.Preload("Subject").
		Where("is_public = ? AND start_time <= ? AND end_time >= ?", true, now, now)
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	var quizzes []model.Quiz
	err := q.Order("created_at desc").Find(&quizzes).Error
	return quizzes, err
}

// RandomPracticeable picks one random practice quiz, optionally within a subject.
func (r *QuizRepository) RandomPracticeable(subjectID uint) (*model.Quiz, error) {
	q := r.DB.Preload("Subject").
		Where("allow_multiple_attempts = ? AND is_public = ?", true, true)
	if subjectID != 0 {
		q = q.Where("subject_id = ?", subjectID)
	}
	var quiz model.Quiz
	err := q.Order("RAND()").First(&quiz).Error
	return &quiz, err
}

// ListPracticeable returns public quizzes open to repeated practice attempts.
func (r *QuizRepository) ListPracticeable(subjectID uint) ([]model.Quiz, error) {
	q := r.DB.Preload("Subject").
		Where("allow_multiple_attempts = ? AND is_public = ?", true, true)
	if subjectID != 0 {
		q = q.Where("subject_id = ?", subjectID)
	}
	var quizzes []model.Quiz
	err := q.Order("created_at desc").Find(&quizzes).Error
	return quizzes, err
}
