package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/utils"
	"go.uber.org/zap"
)

// ErrNoSession is returned when a request carries no staff credential
var ErrNoSession = errors.New("no staff session")

// Credentials are the staff credentials a request may carry
type Credentials struct {
	Cookie string
	Bearer string
}

// StaffSession identifies an authenticated staff member
type StaffSession struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email,omitempty"`
	Roles  []string `json:"roles"`
}

// SessionValidator checks staff credentials against the required roles
type SessionValidator interface {
	ValidateSession(ctx context.Context, creds Credentials, roles []string) (*StaffSession, error)
}

// NewSessionValidator returns the validator for the configured AUTH_MODE
func NewSessionValidator(cfg *config.Config) (SessionValidator, error) {
	switch cfg.AuthMode {
	case config.AuthModeAuthorizer:
		return NewAuthorizerValidator(cfg), nil
	case config.AuthModeJWT:
		return NewJWTValidator(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour), nil
	}
	return nil, fmt.Errorf("unsupported auth mode: %s", cfg.AuthMode)
}

// AuthorizerValidator validates the cookie_session cookie with an Authorizer server
type AuthorizerValidator struct {
	cfg    *config.Config
	mu     sync.Mutex
	client *authorizer.AuthorizerClient
}

// NewAuthorizerValidator creates a validator. The client connects on first use.
func NewAuthorizerValidator(cfg *config.Config) *AuthorizerValidator {
	return &AuthorizerValidator{cfg: cfg}
}

// Initialized reports whether the Authorizer client has been created
func (v *AuthorizerValidator) Initialized() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.client != nil
}

func (v *AuthorizerValidator) getClient(ctx context.Context) (*authorizer.AuthorizerClient, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.client != nil {
		return v.client, nil
	}

	if err := utils.PingAuthorizer(ctx, v.cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	logger.GetLogger().Info("Initializing Authorizer",
		zap.String("authorizerURL", v.cfg.AuthzURL),
		zap.String("clientID", v.cfg.AuthzClientID),
		zap.String("redirectURL", v.cfg.SiteBaseURL),
	)

	client, err := authorizer.NewAuthorizerClient(v.cfg.AuthzClientID, v.cfg.AuthzURL, v.cfg.SiteBaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	v.client = client
	return client, nil
}

// ValidateSession validates the session cookie for the given roles
func (v *AuthorizerValidator) ValidateSession(ctx context.Context, creds Credentials, roles []string) (*StaffSession, error) {
	if creds.Cookie == "" {
		return nil, ErrNoSession
	}

	client, err := v.getClient(ctx)
	if err != nil {
		return nil, err
	}

	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: creds.Cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	session := &StaffSession{Roles: roles}
	if res.User != nil {
		session.UserID = res.User.ID
	}
	return session, nil
}

// StaffClaims are the claims of a staff bearer token
type StaffClaims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTValidator validates HS256 bearer tokens signed with a shared secret
type JWTValidator struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTValidator creates a bearer token validator
func NewJWTValidator(secret string, ttl time.Duration) *JWTValidator {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWTValidator{secret: []byte(secret), ttl: ttl}
}

// IssueToken signs a staff token for subject with the given roles
func (v *JWTValidator) IssueToken(subject, email string, roles []string) (string, error) {
	now := time.Now()
	claims := StaffClaims{
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateSession parses the bearer token and requires one of roles
func (v *JWTValidator) ValidateSession(ctx context.Context, creds Credentials, roles []string) (*StaffSession, error) {
	if creds.Bearer == "" {
		return nil, ErrNoSession
	}

	claims := &StaffClaims{}
	_, err := jwt.ParseWithClaims(creds.Bearer, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if len(roles) > 0 && !slices.ContainsFunc(claims.Roles, func(r string) bool {
		return slices.Contains(roles, r)
	}) {
		return nil, fmt.Errorf("token lacks a staff role")
	}

	return &StaffSession{
		UserID: claims.Subject,
		Email:  claims.Email,
		Roles:  claims.Roles,
	}, nil
}
