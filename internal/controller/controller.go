package controller

import (
	"errors"
	"net/http"
	"strconv"

	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleServiceError maps service sentinels onto HTTP responses so handlers
// stay small. Unknown errors are logged and hidden behind a 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound):
		util.Error(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(c, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(c)
	case errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrResultNotFound),
		errors.Is(err, util.ErrInvalidAccessCode),
		errors.Is(err, gorm.ErrRecordNotFound):
		util.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrQuizNotAccessible):
		util.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrQuizNotYetOpen),
		errors.Is(err, util.ErrQuizClosed),
		errors.Is(err, util.ErrQuizAlreadyTaken),
		errors.Is(err, util.ErrQuizNotPractice):
		util.Conflict(c, err.Error())
	case errors.Is(err, util.ErrShortAnswerRequired),
		errors.Is(err, util.ErrNoCorrectOption),
		errors.Is(err, util.ErrQuestionInUse):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
