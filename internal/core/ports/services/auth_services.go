package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
)

// AuthService authenticates the back-office operator.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
