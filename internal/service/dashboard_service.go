package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardService aggregates the numbers shown on the landing pages. Teacher
// stats are cached in Redis; student dashboards are cheap enough to compute
// per request.
type DashboardService struct {
	quizRepo     *repository.QuizRepository
	questionRepo *repository.QuestionRepository
	resultRepo   *repository.ResultRepository
	practiceRepo *repository.PracticeRepository
	rdb          *redis.Client
}

func NewDashboardService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	resultRepo *repository.ResultRepository,
	practiceRepo *repository.PracticeRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		practiceRepo: practiceRepo,
		rdb:          rdb,
	}
}

type TeacherDashboard struct {
	QuizCount     int64        `json:"quizCount"`
	QuestionCount int64        `json:"questionCount"`
	Submissions   int64        `json:"submissions"`
	AverageScore  float64      `json:"averageScore"`
	RecentQuizzes []model.Quiz `json:"recentQuizzes"`
}

func (s *DashboardService) TeacherDashboard(ctx context.Context, teacherID uint) (*TeacherDashboard, error) {
	key := fmt.Sprintf("dashboard:teacher:%d", teacherID)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached TeacherDashboard
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	dash := &TeacherDashboard{}
	var err error
	if dash.QuizCount, err = s.quizRepo.CountByCreator(teacherID); err != nil {
		return nil, err
	}
	if dash.QuestionCount, err = s.questionRepo.CountByCreator(teacherID); err != nil {
		return nil, err
	}
	if dash.Submissions, err = s.resultRepo.CountByTeacher(teacherID); err != nil {
		return nil, err
	}
	if dash.AverageScore, err = s.resultRepo.AverageScoreByTeacher(teacherID); err != nil {
		return nil, err
	}
	dash.AverageScore = Round2(dash.AverageScore)
	if dash.RecentQuizzes, err = s.quizRepo.RecentByCreator(teacherID, 5); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(dash); err == nil {
			if err := s.rdb.Set(ctx, key, raw, dashboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache dashboard", zap.Error(err))
			}
		}
	}
	return dash, nil
}

// InvalidateTeacher drops the cached dashboard after writes that change it.
func (s *DashboardService) InvalidateTeacher(ctx context.Context, teacherID uint) {
	if s.rdb == nil {
		return
	}
	key := fmt.Sprintf("dashboard:teacher:%d", teacherID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logger.Log.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

type StudentDashboard struct {
	QuizzesTaken     int64          `json:"quizzesTaken"`
	AverageScore     float64        `json:"averageScore"`
	PracticeAttempts int64          `json:"practiceAttempts"`
	OpenQuizzes      []model.Quiz   `json:"openQuizzes"`
	TakenQuizIDs     []uint         `json:"takenQuizIds"`
	RecentResults    []model.Result `json:"recentResults"`
}

func (s *DashboardService) StudentDashboard(studentID uint) (*StudentDashboard, error) {
	dash := &StudentDashboard{}
	var err error
	if dash.QuizzesTaken, err = s.resultRepo.CountByStudent(studentID); err != nil {
		return nil, err
	}
	if dash.AverageScore, err = s.resultRepo.AverageScoreByStudent(studentID); err != nil {
		return nil, err
	}
	dash.AverageScore = Round2(dash.AverageScore)
	if dash.PracticeAttempts, err = s.practiceRepo.CountByStudent(studentID); err != nil {
		return nil, err
	}
	if dash.OpenQuizzes, err = s.quizRepo.ListOpenForStudent(studentID, time.Now()); err != nil {
		return nil, err
	}
	if dash.TakenQuizIDs, err = s.resultRepo.TakenQuizIDs(studentID); err != nil {
		return nil, err
	}
	results, err := s.resultRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	if len(results) > 5 {
		results = results[:5]
	}
	dash.RecentResults = results
	return dash, nil
}

// SettingsStats is the per-role block shown on the settings page.
type SettingsStats struct {
	Role             model.UserRole `json:"role"`
	QuizCount        int64          `json:"quizCount,omitempty"`
	QuestionCount    int64          `json:"questionCount,omitempty"`
	Submissions      int64          `json:"submissions,omitempty"`
	QuizzesTaken     int64          `json:"quizzesTaken,omitempty"`
	PracticeAttempts int64          `json:"practiceAttempts,omitempty"`
	PracticeAverage  float64        `json:"practiceAverage,omitempty"`
	AverageScore     float64        `json:"averageScore"`
}

func (s *DashboardService) SettingsStats(userID uint, role model.UserRole) (*SettingsStats, error) {
	stats := &SettingsStats{Role: role}
	var err error
	if role == model.Teacher || role == model.Admin {
		if stats.QuizCount, err = s.quizRepo.CountByCreator(userID); err != nil {
			return nil, err
		}
		if stats.QuestionCount, err = s.questionRepo.CountByCreator(userID); err != nil {
			return nil, err
		}
		if stats.Submissions, err = s.resultRepo.CountByTeacher(userID); err != nil {
			return nil, err
		}
		if stats.AverageScore, err = s.resultRepo.AverageScoreByTeacher(userID); err != nil {
			return nil, err
		}
	} else {
		if stats.QuizzesTaken, err = s.resultRepo.CountByStudent(userID); err != nil {
			return nil, err
		}
		if stats.PracticeAttempts, err = s.practiceRepo.CountByStudent(userID); err != nil {
			return nil, err
		}
		if stats.PracticeAverage, err = s.practiceRepo.AverageScore(userID); err != nil {
			return nil, err
		}
		stats.PracticeAverage = Round2(stats.PracticeAverage)
		if stats.AverageScore, err = s.resultRepo.AverageScoreByStudent(userID); err != nil {
			return nil, err
		}
	}
	stats.AverageScore = Round2(stats.AverageScore)
	return stats, nil
}
