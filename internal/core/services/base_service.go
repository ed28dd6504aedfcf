package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
	Clock     func() time.Time
}

// ServiceOption is a functional option applied to the BaseService of any service
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for audit fields and balance stamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(txManager portsrepo.TransactionManager, opts []ServiceOption) BaseService {
	base := BaseService{TxManager: txManager, Clock: time.Now}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// InTransaction runs fn inside a transaction, committing when fn returns nil and rolling back otherwise.
func (s *BaseService) InTransaction(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	if s.TxManager == nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "transaction manager not configured", apperrors.ErrInternal)
	}
	tx, err := s.TxManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = s.TxManager.Rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			if rbErr := s.TxManager.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = s.TxManager.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
}
