package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/services"
	"github.com/localnerve/propertyhub/internal/utils"
)

// Maintenance answers 503 with the holding payload while maintenance mode is on
func Maintenance(store *services.SettingsStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := store.Load(c.UserContext())
		if err != nil {
			return err
		}
		if settings.MaintenanceMode {
			return utils.MaintenanceResponse(c, settings.SiteName, settings.ContactPhone, settings.Email)
		}
		c.Locals(LocalsSettings, settings)
		return c.Next()
	}
}

// LocalsSettings is the fiber locals key holding the models.Settings loaded by Maintenance
const LocalsSettings = "settings"
