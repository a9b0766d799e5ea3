package service

import (
	"errors"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuizReader is the read surface the exam flow needs from quiz storage.
type QuizReader interface {
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	IsStudentAllowed(quizID, studentID uint) (bool, error)
}

// ResultStore is the result persistence surface the exam flow depends on.
type ResultStore interface {
	CreateWithAnswers(result *model.Result, answers []model.StudentAnswer) (*model.Result, error)
	FindByID(id uint) (*model.Result, error)
	FindByStudentAndQuiz(studentID, quizID uint) (*model.Result, error)
	ListByStudent(studentID uint) ([]model.Result, error)
}

// ExamService owns the take and submit lifecycle of graded attempts.
type ExamService struct {
	quizRepo    QuizReader
	resultRepo  ResultStore
	practiceSvc *PracticeService
}

func NewExamService(
	quizRepo QuizReader,
	resultRepo ResultStore,
	practiceSvc *PracticeService,
) *ExamService {
	return &ExamService{
		quizRepo:    quizRepo,
		resultRepo:  resultRepo,
		practiceSvc: practiceSvc,
	}
}

// TakeView is what a student receives when opening a quiz: the quiz metadata
// and a freshly shuffled, sanitized question set.
type TakeView struct {
	Quiz      *model.Quiz      `json:"quiz"`
	Questions []model.Question `json:"questions"`
}

// SubmitResult wraps the outcome of a submission. Exactly one of Result and
// Practice is set, depending on whether the quiz allows repeated attempts.
type SubmitResult struct {
	Result          *model.Result         `json:"result,omitempty"`
	Practice        *model.PracticeResult `json:"practice,omitempty"`
	AlreadyComplete bool                  `json:"alreadyComplete"`
}

// gate checks that the student may interact with the quiz right now: the
// quiz must exist, be inside its time window, and be public or allow-listed.
func (s *ExamService) gate(studentID, quizID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	now := time.Now()
	if now.Before(quiz.StartTime) {
		return nil, util.ErrQuizNotYetOpen
	}
	if now.After(quiz.EndTime) {
		return nil, util.ErrQuizClosed
	}

	if !quiz.IsPublic {
		allowed, err := s.quizRepo.IsStudentAllowed(quiz.ID, studentID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, util.ErrQuizNotAccessible
		}
	}
	return quiz, nil
}

// Take opens a quiz for answering. The question order and each question's
// option order are shuffled anew on every call, and grading data is stripped.
func (s *ExamService) Take(studentID, quizID uint) (*TakeView, error) {
	quiz, err := s.gate(studentID, quizID)
	if err != nil {
		return nil, err
	}

	if !quiz.AllowMultipleAttempts {
		_, err := s.resultRepo.FindByStudentAndQuiz(studentID, quizID)
		if err == nil {
			return nil, util.ErrQuizAlreadyTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	questions := SanitizeForTaking(ShuffleForPresentation(quiz.Questions))
	quiz.Questions = nil
	return &TakeView{Quiz: quiz, Questions: questions}, nil
}

// Submit grades and records an attempt. Quizzes that allow repeated attempts
// are routed to the practice recorder, so the graded results table keeps at
// most one row per student and quiz. A duplicate submission returns the
// existing result with AlreadyComplete set instead of failing.
func (s *ExamService) Submit(studentID, quizID uint, subs []Submission) (*SubmitResult, error) {
	quiz, err := s.gate(studentID, quizID)
	if err != nil {
		monitoring.QuizSubmissionCounter.WithLabelValues("graded", "rejected").Inc()
		return nil, err
	}

	if quiz.AllowMultipleAttempts {
		practice, err := s.practiceSvc.recordOnQuiz(studentID, quiz, subs)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Practice: practice}, nil
	}

	byQuestion := indexSubmissions(subs)
	summary := ComputeScore(quiz.Questions, byQuestion)

	result := &model.Result{
		StudentID:   studentID,
		QuizID:      quiz.ID,
		Score:       summary.Score,
		IsGraded:    !summary.HasShortAnswer,
		CompletedAt: time.Now(),
	}
	answers := buildAnswerRows(quiz.Questions, byQuestion)

	saved, err := s.resultRepo.CreateWithAnswers(result, answers)
	if errors.Is(err, util.ErrQuizAlreadyTaken) {
		monitoring.QuizSubmissionCounter.WithLabelValues("graded", "duplicate").Inc()
		return &SubmitResult{Result: saved, AlreadyComplete: true}, nil
	}
	if err != nil {
		monitoring.QuizSubmissionCounter.WithLabelValues("graded", "error").Inc()
		return nil, err
	}

	monitoring.QuizSubmissionCounter.WithLabelValues("graded", "recorded").Inc()
	logger.Log.Info("quiz submitted",
		zap.Uint("student_id", studentID),
		zap.Uint("quiz_id", quiz.ID),
		zap.Float64("score", summary.Score))
	return &SubmitResult{Result: saved}, nil
}

func indexSubmissions(subs []Submission) map[uint]Submission {
	byQuestion := make(map[uint]Submission, len(subs))
	for _, sub := range subs {
		byQuestion[sub.QuestionID] = sub
	}
	return byQuestion
}

// buildAnswerRows flattens submissions into answer rows. A multiple-choice
// selection becomes one row per selected option; unanswered questions leave
// no row. Submissions for questions outside the quiz are dropped, and so are
// option ids that do not belong to the question: they already scored as
// incorrect, and a row for them would dangle against the options table.
func buildAnswerRows(questions []model.Question, subs map[uint]Submission) []model.StudentAnswer {
	var rows []model.StudentAnswer
	for i := range questions {
		q := &questions[i]
		sub, ok := subs[q.ID]
		if !ok {
			continue
		}
		if q.Type == model.ShortAnswer {
			rows = append(rows, model.StudentAnswer{
				QuestionID:   q.ID,
				CustomAnswer: sub.Text,
			})
			continue
		}
		known := make(map[uint]bool, len(q.Answers))
		for _, opt := range q.Answers {
			known[opt.ID] = true
		}
		for _, optID := range sub.SelectedOptionIDs {
			if !known[optID] {
				continue
			}
			id := optID
			rows = append(rows, model.StudentAnswer{
				QuestionID:       q.ID,
				SelectedAnswerID: &id,
			})
		}
	}
	return rows
}

// GetResult returns one attempt in full. Students see their own attempts,
// teachers the attempts on their quizzes, admins everything.
func (s *ExamService) GetResult(resultID uint, claims *util.Claims) (*model.Result, error) {
	result, err := s.resultRepo.FindByID(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	switch {
	case claims.Role == model.Admin:
	case result.StudentID == claims.UserID:
	case result.Quiz.CreatedByID == claims.UserID:
	default:
		return nil, util.ErrPermissionDenied
	}
	return result, nil
}

func (s *ExamService) History(studentID uint) ([]model.Result, error) {
	return s.resultRepo.ListByStudent(studentID)
}
