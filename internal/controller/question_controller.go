package controller

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	questionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// Create godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.QuestionInput true "Question data"
// @Success 201 {object} util.Response{data=model.Question}
// @Router /api/v1/questions [post]
func (ctl *QuestionController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var input service.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	question, err := ctl.questionService.Create(claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Created(c, question)
}

// Update godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param input body service.QuestionInput true "Question data"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/v1/questions/{id} [put]
func (ctl *QuestionController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input service.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	question, err := ctl.questionService.Update(id, claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, question)
}

// Delete godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questions/{id} [delete]
func (ctl *QuestionController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.questionService.Delete(id, claims.UserID); err != nil {
		handleServiceError(c, err)
		return
	}
	util.SuccessWithMessage(c, "question deleted", nil)
}

// Get godoc
// @Summary Get one question with its options
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/v1/questions/{id} [get]
func (ctl *QuestionController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	question, err := ctl.questionService.Get(id, claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, question)
}

func questionFilter(c *gin.Context, creatorID uint) repository.QuestionFilter {
	return repository.QuestionFilter{
		CreatorID:  creatorID,
		SubjectID:  queryUint(c, "subjectId"),
		Difficulty: model.Difficulty(c.Query("difficulty")),
		Type:       model.QuestionType(c.Query("type")),
		Search:     c.Query("search"),
	}
}

// List godoc
// @Summary List the caller's question bank
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param subjectId query int false "Filter by subject"
// @Param difficulty query string false "EASY, MEDIUM or HARD"
// @Param type query string false "Question type"
// @Param search query string false "Search in question text"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/questions [get]
func (ctl *QuestionController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)
	questions, total, err := ctl.questionService.List(questionFilter(c, claims.UserID), page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// Stats godoc
// @Summary Question counts by type for the caller's bank
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=repository.QuestionTypeCounts}
// @Router /api/v1/questions/stats [get]
func (ctl *QuestionController) Stats(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	counts, err := ctl.questionService.CountByType(questionFilter(c, claims.UserID))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, counts)
}

// Import godoc
// @Summary Import questions from a spreadsheet
// @Description Each row holds subject, text, difficulty, up to four options and the 1-based number of the correct option. Invalid rows are skipped and reported.
// @Tags questions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Success 200 {object} util.Response{data=service.ImportReport}
// @Router /api/v1/questions/import [post]
func (ctl *QuestionController) Import(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "spreadsheet file is required")
		return
	}
	report, err := ctl.questionService.ImportFromExcel(claims.UserID, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, report)
}
