package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "taxi-coop-backoffice",
		JWTExpiryDuration: 30 * time.Minute,
		AdminUsername:     "admin",
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.AdminPasswordHash = string(hash)
	}
	return cfg
}

func TestAuthService_Login(t *testing.T) {
	cfg := authConfig(t, "s3cret")
	svc := services.NewAuthService(cfg, services.WithClock(func() time.Time { return fixedNow }))

	res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(1800), res.ExpiresIn)

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithTimeFunc(func() time.Time { return fixedNow.Add(time.Minute) }),
	)
	_, err = parser.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, fixedNow.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestAuthService_RejectsBadCredentials(t *testing.T) {
	svc := services.NewAuthService(authConfig(t, "s3cret"))

	tests := []dto.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "s3cret"},
		{Username: "", Password: ""},
	}
	for _, req := range tests {
		_, err := svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "user %q", req.Username)
	}
}

func TestAuthService_DisabledWithoutHash(t *testing.T) {
	svc := services.NewAuthService(authConfig(t, ""))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "anything"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
