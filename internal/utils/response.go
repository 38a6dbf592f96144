package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// CustomErrorResponse sends a typed error, naming the offending field for validation errors
func CustomErrorResponse(c *fiber.Ctx, ce *types.CustomError) error {
	return c.Status(ce.Code).JSON(ErrorResponseStruct{
		Status:    ce.Code,
		Message:   ce.Message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      ce.Type,
		Field:     ce.Field,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, "notFound")
}

// MaintenanceResponse sends the holding payload shown while the site is down for maintenance
func MaintenanceResponse(c *fiber.Ctx, siteName, contactPhone, email string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(MaintenanceResponseStruct{
		Status:       fiber.StatusServiceUnavailable,
		Message:      siteName + " is under maintenance. Please check back soon.",
		Ok:           false,
		Maintenance:  true,
		SiteName:     siteName,
		ContactPhone: contactPhone,
		Email:        email,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
	Field     string `json:"field,omitempty"`
}

// MaintenanceResponseStruct defines the schema for the maintenance response
type MaintenanceResponseStruct struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Maintenance  bool   `json:"maintenance"`
	SiteName     string `json:"siteName"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email"`
	Timestamp    string `json:"timestamp"`
}
