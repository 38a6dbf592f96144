package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// CategoryHandler handles property category routes
type CategoryHandler struct {
	DB *gorm.DB
}

// ListCategories handles GET /api/categories
// @Summary List property categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := services.ListCategories(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "listCategories")
	}
	return c.JSON(categories)
}

// CreateCategory handles POST /api/categories
// @Summary Create a property category
// @Tags Categories
// @Accept json
// @Produce json
// @Param body body services.CategoryInput true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var in services.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "createCategory")
	}

	category, err := services.CreateCategory(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "createCategory")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a property category
// @Tags Categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := services.DeleteCategory(c.UserContext(), h.DB, c.Params("id")); err != nil {
		return respondError(c, err, "deleteCategory")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
