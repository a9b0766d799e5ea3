package service

import (
	"errors"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// PracticeService records repeatable attempts outside the graded results
// table, tracking progress across attempts on the same quiz.
type PracticeService struct {
	quizRepo     *repository.QuizRepository
	practiceRepo *repository.PracticeRepository
}

func NewPracticeService(quizRepo *repository.QuizRepository, practiceRepo *repository.PracticeRepository) *PracticeService {
	return &PracticeService{quizRepo: quizRepo, practiceRepo: practiceRepo}
}

// Record grades and stores a practice attempt. The quiz must allow repeated
// attempts; practice never touches graded results.
func (s *PracticeService) Record(studentID, quizID uint, subs []Submission) (*model.PracticeResult, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.recordOnQuiz(studentID, quiz, subs)
}

// recordOnQuiz does the actual recording for an already loaded quiz; the
// graded submit path reuses it for multi-attempt quizzes.
func (s *PracticeService) recordOnQuiz(studentID uint, quiz *model.Quiz, subs []Submission) (*model.PracticeResult, error) {
	if !quiz.AllowMultipleAttempts {
		return nil, util.ErrQuizNotPractice
	}

	summary := ComputePracticeScore(quiz.Questions, indexSubmissions(subs))

	var previous *float64
	prior, err := s.practiceRepo.LatestByStudentAndQuiz(studentID, quiz.ID, 1)
	if err != nil {
		return nil, err
	}
	if len(prior) > 0 {
		previous = &prior[0].Score
	}

	result := &model.PracticeResult{
		StudentID:      studentID,
		QuizID:         quiz.ID,
		Score:          summary.Score,
		TotalQuestions: summary.TotalQuestions,
		CorrectAnswers: summary.CorrectAnswers,
		Improvement:    Improvement(summary.Score, previous),
		CompletedAt:    time.Now(),
	}
	if err := s.practiceRepo.Create(result); err != nil {
		monitoring.QuizSubmissionCounter.WithLabelValues("practice", "error").Inc()
		return nil, err
	}
	monitoring.QuizSubmissionCounter.WithLabelValues("practice", "recorded").Inc()
	return result, nil
}

func (s *PracticeService) History(studentID uint) ([]model.PracticeResult, error) {
	return s.practiceRepo.ListByStudent(studentID)
}

// QuizProgress summarizes a student's attempts on one practice quiz.
type QuizProgress struct {
	Attempts  int64                  `json:"attempts"`
	BestScore float64                `json:"bestScore"`
	Recent    []model.PracticeResult `json:"recent"`
}

func (s *PracticeService) Progress(studentID, quizID uint) (*QuizProgress, error) {
	attempts, err := s.practiceRepo.CountByStudentAndQuiz(studentID, quizID)
	if err != nil {
		return nil, err
	}
	best, err := s.practiceRepo.BestScore(studentID, quizID)
	if err != nil {
		return nil, err
	}
	recent, err := s.practiceRepo.LatestByStudentAndQuiz(studentID, quizID, 10)
	if err != nil {
		return nil, err
	}
	progress := &QuizProgress{Attempts: attempts, Recent: recent}
	if best != nil {
		progress.BestScore = *best
	}
	return progress, nil
}
