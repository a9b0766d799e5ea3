package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradingController struct {
	gradingService *service.GradingService
}

func NewGradingController(gradingService *service.GradingService) *GradingController {
	return &GradingController{gradingService: gradingService}
}

// Queue godoc
// @Summary Attempts with short answers awaiting manual grading
// @Tags grading
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.GradingQueue}
// @Router /api/v1/grading [get]
func (ctl *GradingController) Queue(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	queue, err := ctl.gradingService.Queue(claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, queue)
}

// Detail godoc
// @Summary One attempt's short-answer responses
// @Tags grading
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} util.Response{data=service.GradingDetail}
// @Router /api/v1/grading/{id} [get]
func (ctl *GradingController) Detail(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := ctl.gradingService.Detail(id, claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, detail)
}

// Grade godoc
// @Summary Assign points and comments to short answers
// @Description Manual points accumulate in the short-answer total and never change the automatic percentage score.
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Param input body service.GradeInput true "Points per response"
// @Success 200 {object} util.Response{data=model.Result}
// @Router /api/v1/grading/{id} [put]
func (ctl *GradingController) Grade(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input service.GradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	result, err := ctl.gradingService.Grade(id, claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, result)
}
