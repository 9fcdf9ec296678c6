package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/registry/settings"
	"github.com/beauroweb/backend/pkg/response"
)

type SettingsHandler struct {
	registry *settings.Registry
}

func NewSettingsHandler(registry *settings.Registry) *SettingsHandler {
	return &SettingsHandler{registry: registry}
}

// settingView decorates a setting with preformatted strings for table
// display and form editing.
type settingView struct {
	settings.GlobalSetting
	DisplayValue string `json:"displayValue"`
	FormValue    string `json:"formValue"`
}

func newSettingView(s settings.GlobalSetting) settingView {
	return settingView{
		GlobalSetting: s,
		DisplayValue:  settings.FormatForDisplay(s.Value),
		FormValue:     settings.FormatForInput(s.Value),
	}
}

func (h *SettingsHandler) List(c *gin.Context) {
	items := h.registry.List()
	views := make([]settingView, 0, len(items))
	for _, item := range items {
		views = append(views, newSettingView(item))
	}
	response.Success(c, views)
}

func (h *SettingsHandler) DataTypes(c *gin.Context) {
	response.Success(c, h.registry.DataTypes())
}

func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.registry.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, newSettingView(setting))
}

func (h *SettingsHandler) Create(c *gin.Context) {
	var req settings.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	setting, err := h.registry.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, newSettingView(setting))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.ID = c.Param("id")

	setting, err := h.registry.Update(req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, newSettingView(setting))
}

func (h *SettingsHandler) Delete(c *gin.Context) {
	h.registry.Delete(c.Param("id"))
	response.NoContent(c)
}

func (h *SettingsHandler) ToggleActive(c *gin.Context) {
	setting, err := h.registry.ToggleActive(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, newSettingView(setting))
}
