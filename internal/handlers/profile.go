package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/services"
	"github.com/beauroweb/backend/pkg/response"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) ListBureaus(c *gin.Context) {
	var req services.BureauListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.profiles.ListBureaus(&req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

func (h *ProfileHandler) GetBureau(c *gin.Context) {
	profile, err := h.profiles.GetBureau(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, profile)
}

func (h *ProfileHandler) ListIndividuals(c *gin.Context) {
	var req services.IndividualListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.profiles.ListIndividuals(&req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

func (h *ProfileHandler) GetIndividual(c *gin.Context) {
	profile, err := h.profiles.GetIndividual(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, profile)
}
