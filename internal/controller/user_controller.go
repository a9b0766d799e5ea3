package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.UpdateProfileInput true "Profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/v1/users/profile [put]
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.userService.UpdateProfile(claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, user)
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.ChangePasswordInput true "Current and new password"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/v1/users/password [put]
func (ctl *UserController) ChangePassword(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var input service.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if err := ctl.userService.ChangePassword(claims.UserID, input); err != nil {
		handleServiceError(c, err)
		return
	}
	util.SuccessWithMessage(c, "password changed", nil)
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/v1/users/avatar [post]
func (ctl *UserController) UploadAvatar(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	file, err := c.FormFile("avatar")
	if err != nil {
		util.BadRequest(c, "avatar file is required")
		return
	}
	user, err := ctl.userService.UploadAvatar(c.Request.Context(), claims.UserID, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, user)
}

// ListTeachers godoc
// @Summary List teachers a ticket can be addressed to
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/v1/users/teachers [get]
func (ctl *UserController) ListTeachers(c *gin.Context) {
	teachers, err := ctl.userService.ListTeachers()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, teachers)
}
