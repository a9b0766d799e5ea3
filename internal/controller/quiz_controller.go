package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	quizService      *service.QuizService
	dashboardService *service.DashboardService
}

func NewQuizController(quizService *service.QuizService, dashboardService *service.DashboardService) *QuizController {
	return &QuizController{quizService: quizService, dashboardService: dashboardService}
}

// Create godoc
// @Summary Create a quiz from bank questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.QuizInput true "Quiz data"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Router /api/v1/quizzes [post]
func (ctl *QuizController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var input service.QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	quiz, err := ctl.quizService.Create(claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	ctl.dashboardService.InvalidateTeacher(c.Request.Context(), claims.UserID)
	util.Created(c, quiz)
}

// Update godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param input body service.QuizInput true "Quiz data"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/v1/quizzes/{id} [put]
func (ctl *QuizController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input service.QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	quiz, err := ctl.quizService.Update(id, claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// Delete godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/v1/quizzes/{id} [delete]
func (ctl *QuizController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.quizService.Delete(id, claims.UserID); err != nil {
		handleServiceError(c, err)
		return
	}
	ctl.dashboardService.InvalidateTeacher(c.Request.Context(), claims.UserID)
	util.SuccessWithMessage(c, "quiz deleted", nil)
}

// Get godoc
// @Summary Get one of the caller's quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/v1/quizzes/{id} [get]
func (ctl *QuizController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	quiz, err := ctl.quizService.GetForCreator(id, claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// List godoc
// @Summary List the caller's quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/v1/quizzes [get]
func (ctl *QuizController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	quizzes, err := ctl.quizService.ListByCreator(claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quizzes)
}

// Results godoc
// @Summary Score board of a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/v1/quizzes/{id}/results [get]
func (ctl *QuizController) Results(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	quiz, results, err := ctl.quizService.ResultsForQuiz(id, claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"quiz": quiz, "results": results})
}

type joinInput struct {
	AccessCode string `json:"accessCode" binding:"required,len=6"`
}

// Join godoc
// @Summary Join a quiz with its access code
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body joinInput true "Access code"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/v1/quizzes/join [post]
func (ctl *QuizController) Join(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var input joinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	quiz, err := ctl.quizService.JoinByCode(claims.UserID, input.AccessCode)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// Available godoc
// @Summary Quizzes the student can take right now
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/v1/quizzes/available [get]
func (ctl *QuizController) Available(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	quizzes, err := ctl.quizService.ListAvailable(claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quizzes)
}

// Explore godoc
// @Summary Browse public open quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in quiz titles"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/v1/quizzes/explore [get]
func (ctl *QuizController) Explore(c *gin.Context) {
	quizzes, err := ctl.quizService.Explore(c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quizzes)
}

// Practiceable godoc
// @Summary Quizzes open to repeated practice
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param subjectId query int false "Filter by subject"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/v1/quizzes/practice [get]
func (ctl *QuizController) Practiceable(c *gin.Context) {
	quizzes, err := ctl.quizService.ListPracticeable(queryUint(c, "subjectId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quizzes)
}

// RandomPracticeable godoc
// @Summary Pick a random practice quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param subjectId query int false "Filter by subject"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/v1/quizzes/practice/random [get]
func (ctl *QuizController) RandomPracticeable(c *gin.Context) {
	quiz, err := ctl.quizService.RandomPracticeable(queryUint(c, "subjectId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// Subjects godoc
// @Summary List subjects
// @Tags quizzes
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Subject}
// @Router /api/v1/subjects [get]
func (ctl *QuizController) Subjects(c *gin.Context) {
	subjects, err := ctl.quizService.ListSubjects()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, subjects)
}
