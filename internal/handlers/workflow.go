package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/registry/workflow"
	"github.com/beauroweb/backend/pkg/response"
)

type WorkflowHandler struct {
	registry *workflow.Registry
}

func NewWorkflowHandler(registry *workflow.Registry) *WorkflowHandler {
	return &WorkflowHandler{registry: registry}
}

func (h *WorkflowHandler) List(c *gin.Context) {
	filters := workflow.Filters{
		Search: c.Query("search"),
		Type:   workflow.Type(c.Query("type")),
	}
	if raw := c.Query("assignedUserId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			userID := uint(id)
			filters.AssignedUserID = &userID
		}
	}
	if raw := c.Query("isActive"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.IsActive = &active
		}
	}

	response.Success(c, h.registry.List(filters))
}

func (h *WorkflowHandler) Types(c *gin.Context) {
	response.Success(c, h.registry.Types())
}

func (h *WorkflowHandler) Get(c *gin.Context) {
	wf, err := h.registry.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, wf)
}

func (h *WorkflowHandler) Create(c *gin.Context) {
	var req workflow.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	wf, err := h.registry.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, wf)
}

func (h *WorkflowHandler) Update(c *gin.Context) {
	var req workflow.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.ID = c.Param("id")

	wf, err := h.registry.Update(req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, wf)
}

func (h *WorkflowHandler) Delete(c *gin.Context) {
	h.registry.Delete(c.Param("id"))
	response.NoContent(c)
}

func (h *WorkflowHandler) ToggleActive(c *gin.Context) {
	wf, err := h.registry.ToggleActive(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, wf)
}
