package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/platform/auth"
	fs "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/repositories"
)

var (
	// ErrCredentialsRequired is returned when email or password is missing.
	ErrCredentialsRequired = errors.New("auth: email and password are required")
	// ErrInvalidCredentials is returned for unknown users or wrong passwords.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrEmailNotAllowed is returned when the email is outside the allow-list.
	ErrEmailNotAllowed = errors.New("auth: email not allowed")
	// ErrRefreshTokenRequired is returned when refresh is called without a token.
	ErrRefreshTokenRequired = errors.New("auth: refresh token is required")
	// ErrInvalidRefreshToken is returned for expired or malformed refresh tokens.
	ErrInvalidRefreshToken = errors.New("auth: invalid refresh token")
)

// AuthService handles admin login and token refresh.
type AuthService struct {
	users         repositories.UserRepository
	tokens        *auth.TokenService
	allowedEmails map[string]struct{}
	logger        *zap.Logger
}

// AuthServiceDeps lists the dependencies for NewAuthService.
type AuthServiceDeps struct {
	Users         repositories.UserRepository
	Tokens        *auth.TokenService
	AllowedEmails []string
	Logger        *zap.Logger
}

// NewAuthService wires the auth service. An empty allow-list admits any
// stored user.
func NewAuthService(deps AuthServiceDeps) (*AuthService, error) {
	if deps.Users == nil {
		return nil, errors.New("auth: user repository is required")
	}
	if deps.Tokens == nil {
		return nil, errors.New("auth: token service is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	allowed := make(map[string]struct{}, len(deps.AllowedEmails))
	for _, email := range deps.AllowedEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}

	return &AuthService{
		users:         deps.Users,
		tokens:        deps.Tokens,
		allowedEmails: allowed,
		logger:        logger,
	}, nil
}

// Login verifies the credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return auth.TokenPair{}, ErrCredentialsRequired
	}

	if len(s.allowedEmails) > 0 {
		if _, ok := s.allowedEmails[email]; !ok {
			return auth.TokenPair{}, ErrEmailNotAllowed
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if fs.IsNotFound(err) {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("auth: lookup user: %w", err)
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return auth.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user.Email)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("auth: issue tokens: %w", err)
	}
	return pair, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (auth.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return auth.TokenPair{}, ErrRefreshTokenRequired
	}

	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return auth.TokenPair{}, ErrInvalidRefreshToken
	}
	return pair, nil
}
