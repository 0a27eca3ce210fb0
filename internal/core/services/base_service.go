package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/household_finance/internal/platform/logging"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// DomainLock serializes every mutation of persons, jobs and families.
	// Services sharing domain objects must share the lock.
	DomainLock sync.Locker
	Logger     *slog.Logger
}

// ServiceOption is a functional option for configuring the common parts of a service
type ServiceOption func(*BaseService)

// WithDomainLock sets the lock shared with other services
func WithDomainLock(lock sync.Locker) ServiceOption {
	return func(s *BaseService) {
		s.DomainLock = lock
	}
}

// WithLogger sets the fallback logger used when the context carries none
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *BaseService) {
		s.Logger = logger
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{}
	for _, option := range options {
		option(&base)
	}
	if base.DomainLock == nil {
		base.DomainLock = &sync.Mutex{}
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger := logging.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
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
