package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/services"
	"github.com/beauroweb/backend/pkg/response"
)

type QueueHandler struct {
	queue *services.QueueService
}

func NewQueueHandler(queue *services.QueueService) *QueueHandler {
	return &QueueHandler{queue: queue}
}

func (h *QueueHandler) List(c *gin.Context) {
	var req services.QueueListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.queue.List(&req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

func (h *QueueHandler) Get(c *gin.Context) {
	request, err := h.queue.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, request)
}

type decideRequest struct {
	DecidedBy string `json:"decidedBy"`
	Notes     string `json:"notes"`
}

func (h *QueueHandler) Approve(c *gin.Context) {
	h.decide(c, services.DecisionApprove)
}

func (h *QueueHandler) Revise(c *gin.Context) {
	h.decide(c, services.DecisionRevise)
}

func (h *QueueHandler) Reject(c *gin.Context) {
	h.decide(c, services.DecisionReject)
}

func (h *QueueHandler) decide(c *gin.Context, decision string) {
	// The body carries only reviewer attribution and notes; both are
	// optional, so an empty body is accepted.
	var req decideRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	decidedBy := req.DecidedBy
	if decidedBy == "" {
		decidedBy = "admin"
	}

	request, err := h.queue.Decide(c.Param("id"), decision, decidedBy, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, request)
}
