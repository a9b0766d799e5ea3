package service

import (
	"errors"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GradingService handles manual grading of short-answer responses. Manual
// points accumulate in a separate total and never change the automatic
// percentage score.
type GradingService struct {
	resultRepo *repository.ResultRepository
}

func NewGradingService(resultRepo *repository.ResultRepository) *GradingService {
	return &GradingService{resultRepo: resultRepo}
}

// GradingQueue lists attempts on the teacher's quizzes that contain
// short-answer questions, pending first.
type GradingQueue struct {
	Pending []model.Result `json:"pending"`
	Graded  []model.Result `json:"graded"`
}

func (s *GradingService) Queue(teacherID uint) (*GradingQueue, error) {
	pending, err := s.resultRepo.ListWithShortAnswers(teacherID, false)
	if err != nil {
		return nil, err
	}
	graded, err := s.resultRepo.ListWithShortAnswers(teacherID, true)
	if err != nil {
		return nil, err
	}
	return &GradingQueue{Pending: pending, Graded: graded}, nil
}

// GradingDetail is one attempt opened for grading: the result plus only its
// short-answer rows.
type GradingDetail struct {
	Result *model.Result         `json:"result"`
	Rows   []model.StudentAnswer `json:"rows"`
}

func (s *GradingService) Detail(resultID, teacherID uint) (*GradingDetail, error) {
	result, err := s.loadOwned(resultID, teacherID)
	if err != nil {
		return nil, err
	}
	rows, err := s.resultRepo.ListShortAnswerRows(resultID)
	if err != nil {
		return nil, err
	}
	return &GradingDetail{Result: result, Rows: rows}, nil
}

type GradeRowInput struct {
	AnswerID uint `json:"answerId" binding:"required"`
	// Points for this response; rows with no points are left ungraded.
	Points  *float64 `json:"points"`
	Comment string   `json:"comment"`
}

type GradeInput struct {
	Rows     []GradeRowInput `json:"rows" binding:"required"`
	Feedback string          `json:"feedback"`
}

// Grade applies the teacher's points and comments. Rows omitted from the
// input or submitted without points keep their previous values; the
// short-answer total is recomputed from all rows afterwards.
func (s *GradingService) Grade(resultID, teacherID uint, input GradeInput) (*model.Result, error) {
	result, err := s.loadOwned(resultID, teacherID)
	if err != nil {
		return nil, err
	}
	rows, err := s.resultRepo.ListShortAnswerRows(resultID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*model.StudentAnswer, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	var updated []model.StudentAnswer
	for _, in := range input.Rows {
		row, ok := byID[in.AnswerID]
		if !ok || in.Points == nil {
			continue
		}
		row.PointsEarned = *in.Points
		row.TeacherComment = in.Comment
		updated = append(updated, *row)
	}

	var total float64
	for i := range rows {
		total += rows[i].PointsEarned
	}
	result.ShortAnswerScore = total
	result.IsGraded = true
	if input.Feedback != "" {
		result.TeacherFeedback = input.Feedback
	}

	if err := s.resultRepo.SaveGrading(result, updated); err != nil {
		return nil, err
	}
	logger.Log.Info("attempt graded",
		zap.Uint("result_id", result.ID),
		zap.Uint("teacher_id", teacherID),
		zap.Float64("short_answer_score", total))
	return s.resultRepo.FindByID(result.ID)
}

func (s *GradingService) loadOwned(resultID, teacherID uint) (*model.Result, error) {
	result, err := s.resultRepo.FindByID(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	if result.Quiz.CreatedByID != teacherID {
		return nil, util.ErrPermissionDenied
	}
	return result, nil
}
