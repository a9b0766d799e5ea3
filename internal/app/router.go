package app

import (
	"time"

	"quizhub_backend/internal/middleware"
	"quizhub_backend/internal/model"
	"quizhub_backend/pkg/monitoring"
	"quizhub_backend/pkg/security"
	"quizhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupRouter() {
	r := a.engine

	r.Use(gin.Recovery())
	r.Use(security.CORS(a.cfg.CORS.AllowedOrigins))
	r.Use(security.Secure())
	r.Use(monitoring.MetricsMiddleware())
	if a.cfg.Tracing.Enabled {
		r.Use(tracing.GinMiddleware())
	}
	if a.cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(a.cfg.RateLimit.WindowMinutes) * time.Minute
		r.Use(security.RateLimiter(a.cfg.RateLimit.MaxRequests, window))
	}

	r.GET("/health", a.healthController.Check)
	r.GET("/metrics", monitoring.PrometheusHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if a.cfg.Storage.Type == "local" {
		r.Static("/uploads", a.cfg.Storage.LocalPath)
	}

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", a.authController.Register)
			auth.POST("/login", a.authController.Login)
			auth.GET("/me",
				middleware.AuthMiddleware(a.cfg),
				a.authController.Me)
		}

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(a.cfg))
		authed.Use(middleware.ActivityMiddleware(a.userRepo))
		{
			users := authed.Group("/users")
			{
				users.PUT("/profile", a.userController.UpdateProfile)
				users.PUT("/password", a.userController.ChangePassword)
				users.POST("/avatar", a.userController.UploadAvatar)
				users.GET("/teachers", a.userController.ListTeachers)
				users.GET("/stats", a.dashboardController.Settings)
			}

			authed.GET("/subjects", a.quizController.Subjects)

			teacher := authed.Group("")
			teacher.Use(middleware.RoleMiddleware(model.Teacher))
			{
				questions := teacher.Group("/questions")
				{
					questions.POST("", a.questionController.Create)
					questions.GET("", a.questionController.List)
					questions.GET("/stats", a.questionController.Stats)
					questions.POST("/import", a.questionController.Import)
					questions.GET("/:id", a.questionController.Get)
					questions.PUT("/:id", a.questionController.Update)
					questions.DELETE("/:id", a.questionController.Delete)
				}

				quizzes := teacher.Group("/quizzes")
				{
					quizzes.POST("", a.quizController.Create)
					quizzes.GET("", a.quizController.List)
					quizzes.GET("/:id", a.quizController.Get)
					quizzes.PUT("/:id", a.quizController.Update)
					quizzes.DELETE("/:id", a.quizController.Delete)
					quizzes.GET("/:id/results", a.quizController.Results)
				}

				grading := teacher.Group("/grading")
				{
					grading.GET("", a.gradingController.Queue)
					grading.GET("/:id", a.gradingController.Detail)
					grading.PUT("/:id", a.gradingController.Grade)
				}

				teacher.GET("/dashboard/teacher", a.dashboardController.Teacher)
			}

			student := authed.Group("")
			student.Use(middleware.RoleMiddleware(model.Student))
			{
				student.POST("/quizzes/join", a.quizController.Join)
				student.GET("/quizzes/available", a.quizController.Available)
				student.GET("/quizzes/explore", a.quizController.Explore)
				student.GET("/quizzes/practice", a.quizController.Practiceable)
				student.GET("/quizzes/practice/random", a.quizController.RandomPracticeable)

				exam := student.Group("/exam")
				{
					exam.GET("/:id", a.examController.Take)
					exam.POST("/:id/submit", a.examController.Submit)
				}

				student.GET("/results", a.examController.History)

				practice := student.Group("/practice")
				{
					practice.GET("/history", a.practiceController.History)
					practice.POST("/:id/submit", a.practiceController.Submit)
					practice.GET("/:id/progress", a.practiceController.Progress)
				}

				student.GET("/dashboard/student", a.dashboardController.Student)
			}

			// Results are visible to the student who took them and the quiz
			// creator; the service enforces the split.
			authed.GET("/results/:id", a.examController.Result)

			support := authed.Group("/support")
			{
				support.POST("", a.supportController.Create)
				support.GET("", a.supportController.ListMine)
				support.GET("/inbox", a.supportController.Inbox)
				support.GET("/inbox/stats", a.supportController.InboxStats)
				support.GET("/:id", a.supportController.Get)
				support.POST("/:id/reply", a.supportController.Reply)
				support.POST("/:id/follow-up", a.supportController.FollowUp)
				support.PUT("/:id/status", a.supportController.UpdateStatus)
			}
		}
	}
}
