package controller

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SupportController struct {
	supportService *service.SupportService
}

func NewSupportController(supportService *service.SupportService) *SupportController {
	return &SupportController{supportService: supportService}
}

// Create godoc
// @Summary Open a support ticket
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.TicketInput true "Ticket data"
// @Success 201 {object} util.Response{data=model.SupportTicket}
// @Router /api/v1/support [post]
func (ctl *SupportController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var input service.TicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ticket, err := ctl.supportService.Create(claims.UserID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Created(c, ticket)
}

// ListMine godoc
// @Summary Tickets the caller opened
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/support [get]
func (ctl *SupportController) ListMine(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)
	tickets, total, err := ctl.supportService.ListMine(claims.UserID, model.TicketStatus(c.Query("status")), page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: tickets, Total: total, Page: page, Limit: limit})
}

// Inbox godoc
// @Summary Tickets addressed to the caller
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param search query string false "Search in subject and message"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/support/inbox [get]
func (ctl *SupportController) Inbox(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)
	filter := repository.TicketFilter{
		Status: model.TicketStatus(c.Query("status")),
		Type:   model.TicketType(c.Query("type")),
		Search: c.Query("search"),
	}
	tickets, total, err := ctl.supportService.Inbox(claims, filter, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: tickets, Total: total, Page: page, Limit: limit})
}

// InboxStats godoc
// @Summary Ticket counts by status
// @Tags support
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=repository.TicketStats}
// @Router /api/v1/support/inbox/stats [get]
func (ctl *SupportController) InboxStats(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	stats, err := ctl.supportService.InboxStats(claims)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, stats)
}

// Get godoc
// @Summary View one ticket
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} util.Response{data=model.SupportTicket}
// @Router /api/v1/support/{id} [get]
func (ctl *SupportController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ticket, err := ctl.supportService.Get(id, claims)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if err := ctl.supportService.MarkRead(id, claims); err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, ticket)
}

// Reply godoc
// @Summary Respond to a ticket
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body service.ReplyInput true "Response"
// @Success 200 {object} util.Response{data=model.SupportTicket}
// @Router /api/v1/support/{id}/reply [post]
func (ctl *SupportController) Reply(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input service.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ticket, err := ctl.supportService.Reply(id, claims, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, ticket)
}

type followUpInput struct {
	Message string `json:"message" binding:"required"`
}

// FollowUp godoc
// @Summary Append a follow-up message to an own ticket
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body followUpInput true "Follow-up message"
// @Success 200 {object} util.Response{data=model.SupportTicket}
// @Router /api/v1/support/{id}/follow-up [post]
func (ctl *SupportController) FollowUp(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input followUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ticket, err := ctl.supportService.FollowUp(id, claims, input.Message)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, ticket)
}

type statusInput struct {
	Status model.TicketStatus `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

// UpdateStatus godoc
// @Summary Move a ticket to another status
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body statusInput true "New status"
// @Success 200 {object} util.Response{data=model.SupportTicket}
// @Router /api/v1/support/{id}/status [put]
func (ctl *SupportController) UpdateStatus(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ticket, err := ctl.supportService.UpdateStatus(id, claims, input.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, ticket)
}
