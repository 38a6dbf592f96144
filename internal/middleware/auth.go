package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/services"
	"github.com/localnerve/propertyhub/internal/types"
	"go.uber.org/zap"
)

// SessionCookie is the Authorizer session cookie name
const SessionCookie = "cookie_session"

// LocalsStaff is the fiber locals key holding the *services.StaffSession
const LocalsStaff = "staff"

// RequireStaff rejects requests without a valid staff session for one of roles
func RequireStaff(validator services.SessionValidator, roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := services.Credentials{
			Cookie: c.Cookies(SessionCookie),
			Bearer: bearerToken(c.Get(fiber.HeaderAuthorization)),
		}

		session, err := validator.ValidateSession(c.UserContext(), creds, roles)
		if err != nil {
			if errors.Is(err, services.ErrNoSession) {
				return types.NewAuthorizationError("Staff session required")
			}
			logger.FromCtx(c).Info("staff session rejected", zap.Error(err))
			return types.NewAuthorizationError(fmt.Sprintf("Invalid session: %v", err))
		}

		c.Locals(LocalsStaff, session)
		return c.Next()
	}
}

// StaffFromCtx returns the staff session set by RequireStaff, if any
func StaffFromCtx(c *fiber.Ctx) *services.StaffSession {
	session, _ := c.Locals(LocalsStaff).(*services.StaffSession)
	return session
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
