package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	examService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// Take godoc
// @Summary Open a quiz for answering
// @Description Returns the quiz with a freshly shuffled question and option order. Correct flags and reference answers are stripped.
// @Tags exam
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=service.TakeView}
// @Failure 409 {object} util.Response
// @Router /api/v1/exam/{id} [get]
func (ctl *ExamController) Take(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := ctl.examService.Take(claims.UserID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, view)
}

type submitInput struct {
	Answers []service.Submission `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit answers for grading
// @Description Grades choice questions immediately; short answers wait for manual grading. A second submission returns the already recorded result.
// @Tags exam
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param input body submitInput true "Answers"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Router /api/v1/exam/{id}/submit [post]
func (ctl *ExamController) Submit(c *gin.Context) {
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
	result, err := ctl.examService.Submit(claims.UserID, id, input.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, result)
}

// Result godoc
// @Summary View one graded attempt
// @Tags exam
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} util.Response{data=model.Result}
// @Router /api/v1/results/{id} [get]
func (ctl *ExamController) Result(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	result, err := ctl.examService.GetResult(id, claims)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, result)
}

// History godoc
// @Summary The caller's graded attempts
// @Tags exam
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Result}
// @Router /api/v1/results [get]
func (ctl *ExamController) History(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	results, err := ctl.examService.History(claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, results)
}
