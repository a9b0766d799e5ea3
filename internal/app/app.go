package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/controller"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/service"
	"quizhub_backend/pkg/database"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"
	"quizhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	cfg    *config.Config
	engine *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client

	userRepo     *repository.UserRepository
	subjectRepo  *repository.SubjectRepository
	questionRepo *repository.QuestionRepository
	quizRepo     *repository.QuizRepository
	resultRepo   *repository.ResultRepository
	practiceRepo *repository.PracticeRepository
	supportRepo  *repository.SupportRepository

	authController      *controller.AuthController
	userController      *controller.UserController
	questionController  *controller.QuestionController
	quizController      *controller.QuizController
	examController      *controller.ExamController
	practiceController  *controller.PracticeController
	gradingController   *controller.GradingController
	dashboardController *controller.DashboardController
	supportController   *controller.SupportController
	healthController    *controller.HealthController
}

// shouldMigrate decides whether startup runs the schema migration. Release
// deployments migrate only when asked to via the -migrate flag.
func shouldMigrate(cfg *config.Config) bool {
	return cfg.Server.Mode != "release" || cfg.ForceMigrate
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	monitoring.Init()

	db, err := database.InitDB(&cfg.Database, shouldMigrate(cfg))
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The app degrades without Redis: dashboards lose their cache.
		logger.Log.Warn("redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quizhub-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Warn("tracing disabled", zap.Error(err))
		}
	}

	gin.SetMode(cfg.Server.Mode)

	a := &App{
		cfg:    cfg,
		engine: gin.New(),
		db:     db,
		rdb:    rdb,
	}

	a.userRepo = repository.NewUserRepository(db)
	a.subjectRepo = repository.NewSubjectRepository(db)
	a.questionRepo = repository.NewQuestionRepository(db)
	a.quizRepo = repository.NewQuizRepository(db)
	a.resultRepo = repository.NewResultRepository(db)
	a.practiceRepo = repository.NewPracticeRepository(db)
	a.supportRepo = repository.NewSupportRepository(db)

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(a.userRepo, cfg)
	userService := service.NewUserService(a.userRepo, storage)
	questionService := service.NewQuestionService(a.questionRepo, a.subjectRepo)
	quizService := service.NewQuizService(a.quizRepo, a.userRepo, a.subjectRepo, a.resultRepo)
	practiceService := service.NewPracticeService(a.quizRepo, a.practiceRepo)
	examService := service.NewExamService(a.quizRepo, a.resultRepo, practiceService)
	gradingService := service.NewGradingService(a.resultRepo)
	dashboardService := service.NewDashboardService(a.quizRepo, a.questionRepo, a.resultRepo, a.practiceRepo, rdb)
	supportService := service.NewSupportService(a.supportRepo, a.userRepo)

	a.authController = controller.NewAuthController(authService, userService)
	a.userController = controller.NewUserController(userService)
	a.questionController = controller.NewQuestionController(questionService)
	a.quizController = controller.NewQuizController(quizService, dashboardService)
	a.examController = controller.NewExamController(examService)
	a.practiceController = controller.NewPracticeController(practiceService)
	a.gradingController = controller.NewGradingController(gradingService)
	a.dashboardController = controller.NewDashboardController(dashboardService)
	a.supportController = controller.NewSupportController(supportService)
	a.healthController = controller.NewHealthController(db, rdb)

	a.setupRouter()
	return a, nil
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM, then drains
// in-flight requests before returning.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: a.engine,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if a.rdb != nil {
		a.rdb.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Log.Info("server stopped")
	return nil
}
