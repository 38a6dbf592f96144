package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// AreaHandler handles area routes
type AreaHandler struct {
	DB *gorm.DB
}

// ListAreas handles GET /api/areas
// @Summary List areas
// @Description List every area sorted by name
// @Tags Areas
// @Produce json
// @Success 200 {array} models.Area
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /areas [get]
func (h *AreaHandler) ListAreas(c *fiber.Ctx) error {
	areas, err := services.ListAreas(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "listAreas")
	}
	return c.JSON(areas)
}

// CreateArea handles POST /api/areas
// @Summary Create an area
// @Description Create an area. A nonzero order must not already be held by another area.
// @Tags Areas
// @Accept json
// @Produce json
// @Param body body services.AreaInput true "Area"
// @Success 201 {object} models.Area
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /areas [post]
func (h *AreaHandler) CreateArea(c *fiber.Ctx) error {
	var in services.AreaInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "createArea")
	}

	area, err := services.CreateArea(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "createArea")
	}
	return c.Status(fiber.StatusCreated).JSON(area)
}

// UpdateArea handles PATCH /api/areas/:id
// @Summary Update an area
// @Description Update the supplied fields of an area. A changed nonzero order must not be held by another area.
// @Tags Areas
// @Accept json
// @Produce json
// @Param id path string true "Area ID"
// @Param body body services.AreaInput true "Fields to change"
// @Success 200 {object} models.Area
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /areas/{id} [patch]
func (h *AreaHandler) UpdateArea(c *fiber.Ctx) error {
	var in services.AreaInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "updateArea")
	}

	area, err := services.UpdateArea(c.UserContext(), h.DB, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "updateArea")
	}
	return c.JSON(area)
}

// DeleteArea handles DELETE /api/areas/:id
// @Summary Delete an area
// @Tags Areas
// @Param id path string true "Area ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /areas/{id} [delete]
func (h *AreaHandler) DeleteArea(c *fiber.Ctx) error {
	if err := services.DeleteArea(c.UserContext(), h.DB, c.Params("id")); err != nil {
		return respondError(c, err, "deleteArea")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
