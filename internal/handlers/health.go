package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// HealthHandler reports service health
type HealthHandler struct {
	Cfg   *config.Config
	DB    *gorm.DB
	Cache services.Pinger
}

// Health handles GET /health
// @Summary Health check
// @Description Database, settings cache and Authorizer reachability
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Cfg, h.DB, h.Cache)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
