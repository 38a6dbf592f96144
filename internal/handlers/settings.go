package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/services"
)

// SettingsHandler handles the site settings routes
type SettingsHandler struct {
	Store *services.SettingsStore
}

// GetSettings handles GET /api/settings
// @Summary Get site settings
// @Description Get the site settings, with defaults for every unset field
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Settings
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.Store.Load(c.UserContext())
	if err != nil {
		return respondError(c, err, "getSettings")
	}
	return c.JSON(settings)
}

// UpdateSettings handles PATCH /api/settings
// @Summary Update site settings
// @Description Update the supplied settings fields, creating the settings row if needed
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body services.SettingsInput true "Fields to change"
// @Success 200 {object} models.Settings
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /settings [patch]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var in services.SettingsInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "updateSettings")
	}

	settings, err := h.Store.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "updateSettings")
	}
	return c.JSON(settings)
}
