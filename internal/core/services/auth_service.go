package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authService issues access tokens for the single back-office operator.
type authService struct {
	BaseService
	username     string
	passwordHash []byte
	jwtSecret    []byte
	jwtIssuer    string
	jwtExpiry    time.Duration
}

func NewAuthService(cfg *config.Config, opts ...ServiceOption) portssvc.AuthService {
	return &authService{
		BaseService:  newBaseService(nil, opts),
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
		jwtSecret:    []byte(cfg.JWTSecret),
		jwtIssuer:    cfg.JWTIssuer,
		jwtExpiry:    cfg.JWTExpiryDuration,
	}
}

var _ portssvc.AuthService = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if len(s.passwordHash) == 0 {
		s.LogInfo(ctx, "Login attempted but no operator password is configured")
		return nil, fmt.Errorf("%w: login disabled", apperrors.ErrUnauthorized)
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !usernameOK || passwordErr != nil {
		s.GetLogger(ctx).Warn("Invalid login attempt", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := s.generateToken(req.Username)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, fmt.Errorf("%w: failed to sign token", apperrors.ErrInternal)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtExpiry.Seconds()),
	}, nil
}

func (s *authService) generateToken(subject string) (string, error) {
	now := s.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
