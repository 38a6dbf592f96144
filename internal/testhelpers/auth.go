package testhelpers

import (
	"testing"
	"time"

	"github.com/localnerve/propertyhub/internal/services"
)

// TestJWTSecret signs staff tokens in tests
const TestJWTSecret = "test-secret-do-not-use-in-production"

// NewTestValidator returns a JWT session validator using TestJWTSecret
func NewTestValidator() *services.JWTValidator {
	return services.NewJWTValidator(TestJWTSecret, time.Hour)
}

// StaffToken issues a bearer token for a staff member with the given roles
func StaffToken(t *testing.T, v *services.JWTValidator, roles ...string) string {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{"admin"}
	}
	token, err := v.IssueToken("staff-1", "staff@property.com", roles)
	if err != nil {
		t.Fatalf("Failed to issue staff token: %v", err)
	}
	return token
}

// BearerHeader returns the Authorization header carrying token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
