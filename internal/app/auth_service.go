package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AdminSubject is the subject of every token issued by AuthService.
const AdminSubject = "admin"

const generatedSecretBytes = 32

// AuthService implements the shared-password admin gate with bcrypt and
// HS256 tokens.
type AuthService struct {
	passwordHash []byte // nil disables login
	secret       []byte
	issuer       string
	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// NewAuthService builds the gate from cfg. A configured password hash is
// used as is; a plaintext password is hashed once here. Without a JWT
// secret a random one is generated, so tokens do not survive a restart.
func NewAuthService(cfg *config.AuthConfig, logger *slog.Logger) (*AuthService, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &AuthService{
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
		logger: logger,
	}

	switch {
	case cfg.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.PasswordHash)); err != nil {
			return nil, fmt.Errorf("auth.password_hash: %w", err)
		}
		s.passwordHash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing admin password: %w", err)
		}
		s.passwordHash = hash
	default:
		logger.Warn("no admin password configured, admin login disabled")
	}

	if cfg.JWTSecret != "" {
		s.secret = []byte(cfg.JWTSecret)
	} else {
		s.secret = make([]byte, generatedSecretBytes)
		if _, err := rand.Read(s.secret); err != nil {
			return nil, fmt.Errorf("generating jwt secret: %w", err)
		}
		logger.Warn("auth.jwt_secret not set, using a random secret; tokens will not survive a restart")
	}

	return s, nil
}

// Login exchanges the admin password for a signed token.
func (s *AuthService) Login(ctx context.Context, password string) (*ports.Token, error) {
	if s.passwordHash == nil {
		return nil, fmt.Errorf("admin login disabled: %w", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "admin login rejected", slog.String("operation", "Login"))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, fmt.Errorf("wrong password: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	now := s.now()
	expires := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   AdminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
		ID:        ulid.Make().String(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	s.logger.InfoContext(ctx, "admin logged in", slog.Time("expires_at", expires))
	return &ports.Token{Value: signed, ExpiresAt: expires}, nil
}

// Verify validates signature, signing method, issuer and expiry and returns
// the token subject.
func (s *AuthService) Verify(_ context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if claims.Subject != AdminSubject {
		return "", fmt.Errorf("unexpected subject %q: %w", claims.Subject, domain.ErrUnauthorized)
	}
	return claims.Subject, nil
}
