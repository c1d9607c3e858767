// Package service holds the business logic behind the HTTP handlers.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dwitter/internal/authz"
	"dwitter/internal/models"
	"dwitter/internal/observability"
	"dwitter/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "dwitter-api"
	tokenAudience = "dwitter-client"
)

// ErrInvalidToken is returned for tokens that fail signature, claim or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenRevoker stores revoked token IDs until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenClaims are the claims carried by issued tokens.
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	return uint(id), nil
}

// AuthService issues and verifies API tokens and resolves request principals.
type AuthService struct {
	users   repository.UserRepository
	secret  []byte
	ttl     time.Duration
	revoker TokenRevoker
	now     func() time.Time
}

// NewAuthService returns an AuthService. revoker may be nil, in which case
// revocation is unavailable and no token is ever considered revoked.
func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration, revoker TokenRevoker) *AuthService {
	return &AuthService{
		users:   users,
		secret:  []byte(secret),
		ttl:     ttl,
		revoker: revoker,
		now:     time.Now,
	}
}

// HashPassword returns the bcrypt hash stored on User.Password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Login checks a username/password pair and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, models.NewValidationError("Must include \"username\" and \"password\".")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, models.NewValidationError("Unable to log in with provided credentials.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, models.NewValidationError("Unable to log in with provided credentials.")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return token, user, nil
}

// IssueToken signs an HS256 token for user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}

	now := s.now()
	claims := TokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature, issuer, audience and expiry.
func (s *AuthService) ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// Principal resolves the acting principal for a raw token. Any failure to
// establish a live, unrevoked user yields the anonymous principal; only
// storage failures are returned as errors.
func (s *AuthService) Principal(ctx context.Context, tokenString string) (authz.Principal, error) {
	if tokenString == "" {
		return authz.AnonymousPrincipal(), nil
	}

	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return authz.AnonymousPrincipal(), nil
	}
	userID, err := claims.UserID()
	if err != nil {
		return authz.AnonymousPrincipal(), nil
	}

	if s.revoker != nil && claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			// Revocation lookups fail open.
			observability.Logger.WarnContext(ctx, "token revocation check failed", "error", err)
		} else if revoked {
			return authz.AnonymousPrincipal(), nil
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if models.IsNotFound(err) {
			return authz.AnonymousPrincipal(), nil
		}
		return authz.AnonymousPrincipal(), err
	}
	return authz.ForUser(user.ID, user.IsModerator), nil
}

// ErrRevocationUnavailable is returned by Revoke when no revocation store is configured.
var ErrRevocationUnavailable = errors.New("token revocation unavailable")

// Revoke blacklists the token's ID for the rest of its lifetime.
func (s *AuthService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return models.NewForbiddenError("Authentication credentials were not provided.")
	}
	if s.revoker == nil {
		return ErrRevocationUnavailable
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return models.NewValidationError("Token cannot be revoked")
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}
