package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// InquiryHandler handles inquiry routes
type InquiryHandler struct {
	DB *gorm.DB
}

// InquiryStatusInput changes the status of an inquiry
type InquiryStatusInput struct {
	Status string `json:"status" example:"CONTACTED"`
}

// CreateInquiry handles POST /api/inquiries
// @Summary Submit an inquiry
// @Description Record a lead from the public site with status PENDING
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param body body services.InquiryInput true "Inquiry"
// @Success 201 {object} models.Inquiry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *fiber.Ctx) error {
	var in services.InquiryInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "createInquiry")
	}

	inquiry, err := services.CreateInquiry(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "createInquiry")
	}
	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

// ListInquiries handles GET /api/inquiries
// @Summary List inquiries
// @Description List every inquiry newest first, with the title of its listing when it still exists
// @Tags Inquiries
// @Produce json
// @Success 200 {array} services.InquiryView
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /inquiries [get]
func (h *InquiryHandler) ListInquiries(c *fiber.Ctx) error {
	inquiries, err := services.ListInquiries(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "listInquiries")
	}
	return c.JSON(inquiries)
}

// UpdateInquiryStatus handles PATCH /api/inquiries/:id
// @Summary Update inquiry status
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param body body InquiryStatusInput true "New status"
// @Success 200 {object} models.Inquiry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /inquiries/{id} [patch]
func (h *InquiryHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	var in InquiryStatusInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "updateInquiry")
	}

	inquiry, err := services.UpdateInquiryStatus(c.UserContext(), h.DB, c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err, "updateInquiry")
	}
	return c.JSON(inquiry)
}
