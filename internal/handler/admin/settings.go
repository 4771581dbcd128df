package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/model"
	"github.com/chaesu44438/emotion-theater/internal/model/story"
	storyRepo "github.com/chaesu44438/emotion-theater/internal/repository/story"
)

var knownSettings = map[string]bool{
	story.SettingStoryPrompt:       true,
	story.SettingImagePromptSystem: true,
}

// GetSetting returns a prompt template
// @Summary      Read a prompt template
// @Description  Returns the active value of a prompt template, operator override or default
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "setting ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/admin/settings/{id} [get]
func (h *Handler) GetSetting(c *gin.Context) {
	settingID := c.Param("id")
	if !knownSettings[settingID] {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40004,
			Message: "Unknown setting",
		})
		return
	}

	value := h.settings.Get(c.Request.Context(), settingID)

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"id":        settingID,
			"value":     value,
			"isDefault": value == storyRepo.Default(settingID),
		},
	})
}

// UpdateSetting overrides a prompt template
// @Summary      Override a prompt template
// @Description  Stores an operator-provided value for a prompt template
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                      true  "setting ID"
// @Param        request  body      model.UpdateSettingRequest  true  "new value"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/admin/settings/{id} [put]
func (h *Handler) UpdateSetting(c *gin.Context) {
	settingID := c.Param("id")
	if !knownSettings[settingID] {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40004,
			Message: "Unknown setting",
		})
		return
	}

	var req model.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	if err := h.settings.Set(c.Request.Context(), settingID, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to update setting",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "updated",
	})
}

// ResetSetting restores a prompt template default
// @Summary      Reset a prompt template
// @Description  Drops the operator override so the built-in default applies again
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "setting ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/admin/settings/{id} [delete]
func (h *Handler) ResetSetting(c *gin.Context) {
	settingID := c.Param("id")
	if !knownSettings[settingID] {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40004,
			Message: "Unknown setting",
		})
		return
	}

	if err := h.settings.Reset(c.Request.Context(), settingID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to reset setting",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "reset",
	})
}
