package repository

import (
	"errors"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// CreateWithAnswers persists a graded attempt and its answer rows in a single
// transaction. The existence check and the insert run inside the same
// transaction, and the unique index on (student_id, quiz_id) backs it up, so
// two near-simultaneous submissions can never both create a result. When an
// attempt already exists it is returned alongside ErrQuizAlreadyTaken; that
// covers the race where both submissions pass the existence check and the
// unique index fails the second insert.
func (r *ResultRepository) CreateWithAnswers(result *model.Result, answers []model.StudentAnswer) (*model.Result, error) {
	var existing *model.Result
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var prior model.Result
		err := tx.Where("student_id = ? AND quiz_id = ?", result.StudentID, result.QuizID).
			First(&prior).Error
		if err == nil {
			existing = &prior
			return util.ErrQuizAlreadyTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Omit("Student", "Quiz", "StudentAnswers").Create(result).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ResultID = result.ID
			if err := tx.Omit("Question", "SelectedAnswer").Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		prior, ferr := r.FindByStudentAndQuiz(result.StudentID, result.QuizID)
		if ferr != nil {
			return nil, err
		}
		return prior, util.ErrQuizAlreadyTaken
	}
	if errors.Is(err, util.ErrQuizAlreadyTaken) {
		return existing, err
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ResultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.Preload("Quiz").Preload("Quiz.Subject").
		Preload("Quiz.Questions").Preload("Quiz.Questions.Answers").
		Preload("Student").
		Preload("StudentAnswers").
		Preload("StudentAnswers.Question").
		Preload("StudentAnswers.SelectedAnswer").
		First(&result, id).Error
	return &result, err
}

func (r *ResultRepository) FindByStudentAndQuiz(studentID, quizID uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.Where("student_id = ? AND quiz_id = ?", studentID, quizID).First(&result).Error
	return &result, err
}

func (r *ResultRepository) ListByStudent(studentID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Quiz").Preload("Quiz.Subject").
		Where("student_id = ?", studentID).
		Order("completed_at desc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListByQuiz(quizID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Student").
		Where("quiz_id = ?", quizID).
		Order("score desc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) TakenQuizIDs(studentID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Result{}).
		Where("student_id = ?", studentID).
		Pluck("quiz_id", &ids).Error
	return ids, err
}

func (r *ResultRepository) CountByTeacher(teacherID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Result{}).
		Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("quizzes.created_by_id = ?", teacherID).
		Count(&count).Error
	return count, err
}

func (r *ResultRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Result{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

func (r *ResultRepository) AverageScoreByTeacher(teacherID uint) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.Result{}).
		Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("quizzes.created_by_id = ?", teacherID).
		Select("AVG(results.score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *ResultRepository) AverageScoreByStudent(studentID uint) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.Result{}).
		Where("student_id = ?", studentID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// ListWithShortAnswers returns results for quizzes containing short-answer
// questions, split by grading state for the grading dashboard.
func (r *ResultRepository) ListWithShortAnswers(teacherID uint, graded bool) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Student").Preload("Quiz").
		Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("quizzes.created_by_id = ?", teacherID).
		Where("results.is_graded = ?", graded).
		Where(`EXISTS (
			SELECT 1 FROM quiz_questions qq
			JOIN questions q ON q.id = qq.question_id
			WHERE qq.quiz_id = results.quiz_id AND q.type = ?)`, model.ShortAnswer).
		Order("results.completed_at desc").
		Distinct().
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListShortAnswerRows(resultID uint) ([]model.StudentAnswer, error) {
	var rows []model.StudentAnswer
	err := r.DB.Preload("Question").
		Joins("JOIN questions ON questions.id = student_answers.question_id").
		Where("student_answers.result_id = ? AND questions.type = ?", resultID, model.ShortAnswer).
		Find(&rows).Error
	return rows, err
}

// SaveGrading updates the graded rows and the owning result's aggregates in
// one transaction.
func (r *ResultRepository) SaveGrading(result *model.Result, rows []model.StudentAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			err := tx.Model(&model.StudentAnswer{}).
				Where("id = ?", rows[i].ID).
				Updates(map[string]interface{}{
					"points_earned":   rows[i].PointsEarned,
					"teacher_comment": rows[i].TeacherComment,
				}).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&model.Result{}).
			Where("id = ?", result.ID).
			Updates(map[string]interface{}{
				"short_answer_score": result.ShortAnswerScore,
				"is_graded":          result.IsGraded,
				"teacher_feedback":   result.TeacherFeedback,
			}).Error
	})
}
