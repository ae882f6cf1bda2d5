package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zsyio/api/internal/platform/config"
)

// Token kinds embedded in the JWT claims so refresh tokens cannot be replayed as access tokens.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

var (
	// ErrInvalidToken is returned when a token fails signature or claim validation.
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrWrongTokenKind is returned when a token of the wrong kind is presented.
	ErrWrongTokenKind = errors.New("auth: wrong token kind")
	// ErrMissingSecret is returned when the service is constructed without a signing secret.
	ErrMissingSecret = errors.New("auth: signing secret is required")
)

// Claims carries the JWT payload for issued tokens.
type Claims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenPair bundles the access and refresh tokens returned on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenService issues and verifies HMAC-signed JWTs for the admin endpoints.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      func() time.Time
}

// NewTokenService constructs a TokenService from configuration.
func NewTokenService(cfg config.AuthConfig, clock func() time.Time) (*TokenService, error) {
	secret := strings.TrimSpace(cfg.SigningSecret)
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if clock == nil {
		clock = time.Now
	}
	wrapped := func() time.Time { return clock().UTC() }

	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     strings.TrimSpace(cfg.Issuer),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		clock:      wrapped,
	}, nil
}

// Issue mints an access/refresh token pair for the given subject.
func (s *TokenService) Issue(subject string) (TokenPair, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return TokenPair{}, errors.New("auth: subject is required")
	}

	now := s.clock()
	accessExpiry := now.Add(s.accessTTL)

	access, err := s.sign(subject, TokenKindAccess, now, accessExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(subject, TokenKindRefresh, now, now.Add(s.refreshTTL))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}, nil
}

// Verify parses and validates a token, enforcing the expected kind, and returns the subject.
func (s *TokenService) Verify(raw, kind string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidToken
	}

	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock),
	)
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return "", ErrInvalidToken
	}
	if claims.Kind != kind {
		return "", ErrWrongTokenKind
	}
	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (s *TokenService) Refresh(raw string) (TokenPair, error) {
	subject, err := s.Verify(raw, TokenKindRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return s.Issue(subject)
}

func (s *TokenService) sign(subject, kind string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.New("auth: unable to sign token")
	}
	return signed, nil
}
