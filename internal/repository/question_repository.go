package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Preload("Answers").Preload("Subject").First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) FindByIDAndCreator(id, creatorID uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Preload("Answers").Preload("Subject").
		Where("created_by_id = ?", creatorID).
		First(&q, id).Error
	return &q, err
}

// Update saves the question and replaces its answer options in one transaction.
func (r *QuestionRepository) Update(question *model.Question, answers []model.Answer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answers", "Subject").Save(question).Error; err != nil {
			return err
		}
		if answers == nil {
			return nil
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ID = 0
			answers[i].QuestionID = question.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// QuizUsageCount reports how many quizzes reference the question.
func (r *QuestionRepository) QuizUsageCount(id uint) (int64, error) {
	var count int64
	err := r.DB.Table("quiz_questions").Where("question_id = ?", id).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM quiz_questions WHERE question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

type QuestionFilter struct {
	CreatorID  uint
	SubjectID  uint
	Difficulty model.Difficulty
	Type       model.QuestionType
	Search     string
}

type QuestionTypeCounts struct {
	Total          int64 `json:"total"`
	SingleChoice   int64 `json:"singleChoice"`
	MultipleChoice int64 `json:"multipleChoice"`
	TrueFalse      int64 `json:"trueFalse"`
	ShortAnswer    int64 `json:"shortAnswer"`
}

func (r *QuestionRepository) filtered(f QuestionFilter) *gorm.DB {
	q := r.DB.Model(&model.Question{}).Where("created_by_id = ?", f.CreatorID)
	if f.SubjectID != 0 {
		q = q.Where("subject_id = ?", f.SubjectID)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		q = q.Where("text LIKE ?", "%"+f.Search+"%")
	}
	return q
}

func (r *QuestionRepository) List(f QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	offset := (page - 1) * limit
	err := r.filtered(f).
		Preload("Answers").Preload("Subject").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) CountByType(f QuestionFilter) (*QuestionTypeCounts, error) {
	counts := &QuestionTypeCounts{}
	if err := r.filtered(f).Count(&counts.Total).Error; err != nil {
		return nil, err
	}

	typed := map[model.QuestionType]*int64{
		model.SingleChoice:   &counts.SingleChoice,
		model.MultipleChoice: &counts.MultipleChoice,
		model.TrueFalse:      &counts.TrueFalse,
		model.ShortAnswer:    &counts.ShortAnswer,
	}
	for t, dst := range typed {
		ft := f
		ft.Type = t
		if err := r.filtered(ft).Count(dst).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// ListByCreator returns the creator's full bank, for picking questions into a quiz.
func (r *QuestionRepository) ListByCreator(creatorID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("created_by_id = ?", creatorID).
		Preload("Subject").
		Order("created_at desc").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountByCreator(creatorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("created_by_id = ?", creatorID).Count(&count).Error
	return count, err
}
