package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	practiceService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{practiceService: practiceService}
}

// Submit godoc
// @Summary Record a practice attempt
// @Description Practice attempts are repeatable and track improvement against the previous attempt on the same quiz.
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param input body submitInput true "Answers"
// @Success 200 {object} util.Response{data=model.PracticeResult}
// @Failure 409 {object} util.Response
// @Router /api/v1/practice/{id}/submit [post]
func (ctl *PracticeController) Submit(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input submitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	result, err := ctl.practiceService.Record(claims.UserID, id, input.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, result)
}

// History godoc
// @Summary The caller's practice attempts
// @Tags practice
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PracticeResult}
// @Router /api/v1/practice/history [get]
func (ctl *PracticeController) History(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	results, err := ctl.practiceService.History(claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, results)
}

// Progress godoc
// @Summary Progress on one practice quiz
// @Tags practice
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=service.QuizProgress}
// @Router /api/v1/practice/{id}/progress [get]
func (ctl *PracticeController) Progress(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	progress, err := ctl.practiceService.Progress(claims.UserID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, progress)
}
