package service

import (
	"errors"
	"fmt"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	quizRepo    *repository.QuizRepository
	userRepo    *repository.UserRepository
	subjectRepo *repository.SubjectRepository
	resultRepo  *repository.ResultRepository
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	resultRepo *repository.ResultRepository,
) *QuizService {
	return &QuizService{
		quizRepo:    quizRepo,
		userRepo:    userRepo,
		subjectRepo: subjectRepo,
		resultRepo:  resultRepo,
	}
}

type QuizInput struct {
	Title                 string    `json:"title" binding:"required,max=255"`
	SubjectID             uint      `json:"subjectId" binding:"required"`
	QuestionIDs           []uint    `json:"questionIds" binding:"required,min=1"`
	DurationMinutes       int       `json:"durationMinutes" binding:"required,min=1"`
	StartTime             time.Time `json:"startTime" binding:"required"`
	EndTime               time.Time `json:"endTime" binding:"required"`
	IsPublic              *bool     `json:"isPublic"`
	AllowMultipleAttempts bool      `json:"allowMultipleAttempts"`
}

func (input QuizInput) validateWindow() error {
	if !input.EndTime.After(input.StartTime) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

func (s *QuizService) Create(creatorID uint, input QuizInput) (*model.Quiz, error) {
	if err := input.validateWindow(); err != nil {
		return nil, err
	}
	if _, err := s.subjectRepo.FindByID(input.SubjectID); err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}
	quiz := &model.Quiz{
		Title:                 input.Title,
		SubjectID:             input.SubjectID,
		CreatedByID:           creatorID,
		DurationMinutes:       input.DurationMinutes,
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		IsPublic:              isPublic,
		AllowMultipleAttempts: input.AllowMultipleAttempts,
	}
	if err := s.quizRepo.Create(quiz, input.QuestionIDs); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz created",
		zap.Uint("quiz_id", quiz.ID),
		zap.Uint("creator_id", creatorID),
		zap.String("access_code", quiz.AccessCode))
	return s.quizRepo.FindByIDWithQuestions(quiz.ID)
}

func (s *QuizService) Update(id, creatorID uint, input QuizInput) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDAndCreator(id, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	if err := input.validateWindow(); err != nil {
		return nil, err
	}

	quiz.Title = input.Title
	quiz.SubjectID = input.SubjectID
	quiz.DurationMinutes = input.DurationMinutes
	quiz.StartTime = input.StartTime
	quiz.EndTime = input.EndTime
	if input.IsPublic != nil {
		quiz.IsPublic = *input.IsPublic
	}
	quiz.AllowMultipleAttempts = input.AllowMultipleAttempts
	if err := s.quizRepo.Update(quiz, input.QuestionIDs); err != nil {
		return nil, err
	}
	return s.quizRepo.FindByIDWithQuestions(quiz.ID)
}

func (s *QuizService) Delete(id, creatorID uint) error {
	if _, err := s.quizRepo.FindByIDAndCreator(id, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPermissionDenied
		}
		return err
	}
	return s.quizRepo.Delete(id)
}

func (s *QuizService) GetForCreator(id, creatorID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDAndCreator(id, creatorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPermissionDenied
	}
	return quiz, err
}

func (s *QuizService) ListByCreator(creatorID uint) ([]model.Quiz, error) {
	return s.quizRepo.ListByCreator(creatorID)
}

// ResultsForQuiz returns the score board of a quiz for its creator.
func (s *QuizService) ResultsForQuiz(quizID, creatorID uint) (*model.Quiz, []model.Result, error) {
	quiz, err := s.quizRepo.FindByIDAndCreator(quizID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrPermissionDenied
		}
		return nil, nil, err
	}
	results, err := s.resultRepo.ListByQuiz(quizID)
	return quiz, results, err
}

// JoinByCode adds a student to a private quiz's allow-list. Joining a public
// quiz with its code is accepted and simply returns it. Joining twice is
// idempotent.
func (s *QuizService) JoinByCode(studentID uint, code string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByAccessCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidAccessCode
		}
		return nil, err
	}
	if !quiz.IsOpenAt(time.Now()) && time.Now().After(quiz.EndTime) {
		return nil, util.ErrQuizClosed
	}
	if quiz.IsPublic {
		return quiz, nil
	}

	allowed, err := s.quizRepo.IsStudentAllowed(quiz.ID, studentID)
	if err != nil {
		return nil, err
	}
	if allowed {
		return quiz, nil
	}
	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if err := s.quizRepo.AddAllowedStudent(quiz.ID, student); err != nil {
		return nil, err
	}
	return quiz, nil
}

// ListAvailable returns quizzes the student can take right now, with quizzes
// they already completed flagged out.
func (s *QuizService) ListAvailable(studentID uint) ([]model.Quiz, error) {
	quizzes, err := s.quizRepo.ListOpenForStudent(studentID, time.Now())
	if err != nil {
		return nil, err
	}
	taken, err := s.resultRepo.TakenQuizIDs(studentID)
	if err != nil {
		return nil, err
	}
	takenSet := make(map[uint]bool, len(taken))
	for _, id := range taken {
		takenSet[id] = true
	}
	open := quizzes[:0]
	for _, quiz := range quizzes {
		if !takenSet[quiz.ID] || quiz.AllowMultipleAttempts {
			open = append(open, quiz)
		}
	}
	return open, nil
}

func (s *QuizService) Explore(search string) ([]model.Quiz, error) {
	return s.quizRepo.ListPublicOpen(time.Now(), search)
}

func (s *QuizService) ListPracticeable(subjectID uint) ([]model.Quiz, error) {
	return s.quizRepo.ListPracticeable(subjectID)
}

func (s *QuizService) RandomPracticeable(subjectID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.RandomPracticeable(subjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) ListSubjects() ([]model.Subject, error) {
	return s.subjectRepo.List()
}
