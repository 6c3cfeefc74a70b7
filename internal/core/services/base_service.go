package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/middleware"
)

// Clock returns the current instant. Services take one so tests can pin "today".
type Clock func() time.Time

// BaseService provides common functionality for all services
type BaseService struct {
	clock Clock
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the service clock reading.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// Today returns the calendar date all rules of one call are evaluated against.
func (s *BaseService) Today() time.Time {
	return domain.Today(s.Now())
}
